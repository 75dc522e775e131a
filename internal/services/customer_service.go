package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/citypermits/permits-api/internal/client/dvv"
	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/logger"
	"github.com/citypermits/permits-api/internal/types/business"
)

// ErrNoDrivingLicence is returned when a permit is requested by a
// person without an active driving licence.
var ErrNoDrivingLicence = errors.New("customer has no active driving licence")

// VehicleRegistry looks up vehicles and driving licences from the
// national transport registry.
type VehicleRegistry interface {
	GetVehicle(ctx context.Context, registrationNumber, nationalID string) (*business.Vehicle, error)
	HasActiveDrivingLicence(ctx context.Context, nationalID string) (bool, error)
}

// PersonRegistry looks up persons from the population registry.
type PersonRegistry interface {
	GetPerson(ctx context.Context, nationalID string) (*dvv.Person, error)
}

// CustomerService resolves customers and their vehicles against the
// national registries and keeps the local records in sync with them.
type CustomerService struct {
	db       db.Querier
	vehicles VehicleRegistry
	persons  PersonRegistry
	logger   *zap.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(querier db.Querier, vehicles VehicleRegistry, persons PersonRegistry) *CustomerService {
	return &CustomerService{
		db:       querier,
		vehicles: vehicles,
		persons:  persons,
		logger:   logger.Log,
	}
}

// ResolveCustomerParams carries the contact details the customer enters
// themselves. Name, address and zone always come from the registry.
type ResolveCustomerParams struct {
	NationalIDNumber string `validate:"required"`
	Email            string `validate:"omitempty,email"`
	PhoneNumber      string
	Language         string `validate:"omitempty,oneof=fi sv en"`
}

// ResolveCustomer fetches the person from the population registry and
// creates or refreshes the local customer record. The registry address
// decides the customer's home zone.
func (s *CustomerService) ResolveCustomer(ctx context.Context, params ResolveCustomerParams) (*business.Customer, error) {
	person, err := s.persons.GetPerson(ctx, params.NationalIDNumber)
	if err != nil {
		return nil, err
	}

	var zoneID *uuid.UUID
	if person.ZoneName != "" {
		zone, err := s.db.GetZoneByName(ctx, person.ZoneName)
		if err != nil {
			s.logger.Warn("registry zone is not a permit zone",
				zap.String("zone_name", person.ZoneName),
				zap.Error(err))
		} else {
			zoneID = &zone.ID
		}
	}

	existing, err := s.db.GetCustomerByNationalID(ctx, params.NationalIDNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up customer")
	}

	language := params.Language
	if language == "" {
		language = "fi"
	}

	if existing == nil {
		return s.db.CreateCustomer(ctx, db.CreateCustomerParams{
			FirstName:        person.FirstName,
			LastName:         person.LastName,
			NationalIDNumber: params.NationalIDNumber,
			Email:            params.Email,
			PhoneNumber:      params.PhoneNumber,
			Language:         language,
			Address:          person.Address,
			ZoneID:           zoneID,
		})
	}

	email := params.Email
	if email == "" {
		email = existing.Email
	}
	phone := params.PhoneNumber
	if phone == "" {
		phone = existing.PhoneNumber
	}

	return s.db.UpdateCustomer(ctx, db.UpdateCustomerParams{
		ID:          existing.ID,
		FirstName:   person.FirstName,
		LastName:    person.LastName,
		Email:       email,
		PhoneNumber: phone,
		Language:    language,
		Address:     person.Address,
		ZoneID:      zoneID,
	})
}

// GetCustomer returns a customer by id.
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*business.Customer, error) {
	return s.db.GetCustomer(ctx, id)
}

// GetVehicle returns the stored vehicle record without consulting the
// registry.
func (s *CustomerService) GetVehicle(ctx context.Context, registrationNumber string) (*business.Vehicle, error) {
	return s.db.GetVehicleByRegistration(ctx, registrationNumber)
}

// FetchVehicle fetches a vehicle from the transport registry, verifies
// the customer holds it and stores the registry data locally. The low
// emission flag always reflects the latest registry data.
func (s *CustomerService) FetchVehicle(ctx context.Context, registrationNumber, nationalID string) (*business.Vehicle, error) {
	vehicle, err := s.vehicles.GetVehicle(ctx, registrationNumber, nationalID)
	if err != nil {
		return nil, err
	}
	return s.db.UpsertVehicle(ctx, db.UpsertVehicleParams{
		RegistrationNumber: vehicle.RegistrationNumber,
		Manufacturer:       vehicle.Manufacturer,
		Model:              vehicle.Model,
		PowerType:          vehicle.PowerType,
		EuroClass:          vehicle.EuroClass,
		Emission:           vehicle.Emission,
		EmissionType:       vehicle.EmissionType,
		IsLowEmission:      vehicle.IsLowEmission,
		SerialNumber:       vehicle.SerialNumber,
	})
}

// VerifyDrivingLicence checks the customer holds an active driving
// licence, a precondition for buying a permit.
func (s *CustomerService) VerifyDrivingLicence(ctx context.Context, nationalID string) error {
	active, err := s.vehicles.HasActiveDrivingLicence(ctx, nationalID)
	if err != nil {
		return err
	}
	if !active {
		return ErrNoDrivingLicence
	}
	return nil
}
