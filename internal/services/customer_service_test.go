package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citypermits/permits-api/internal/client/dvv"
	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/mocks"
	"github.com/citypermits/permits-api/internal/services"
	"github.com/citypermits/permits-api/internal/types/business"
)

func TestResolveCustomer_New(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	vehicles := mocks.NewMockVehicleRegistryForTest(t)
	persons := mocks.NewMockPersonRegistryForTest(t)
	service := services.NewCustomerService(querier, vehicles, persons)
	ctx := context.Background()

	zone := &business.Zone{ID: uuid.New(), Name: "K"}
	person := &dvv.Person{
		NationalID: "010190-123A",
		FirstName:  "Maija",
		LastName:   "Meikäläinen",
		Address:    "Mannerheimintie 1",
		ZoneName:   "K",
	}

	persons.EXPECT().GetPerson(ctx, "010190-123A").Return(person, nil)
	querier.EXPECT().GetZoneByName(ctx, "K").Return(zone, nil)
	querier.EXPECT().GetCustomerByNationalID(ctx, "010190-123A").Return(nil, nil)
	querier.EXPECT().CreateCustomer(ctx, db.CreateCustomerParams{
		FirstName:        "Maija",
		LastName:         "Meikäläinen",
		NationalIDNumber: "010190-123A",
		Email:            "maija@example.com",
		Language:         "fi",
		Address:          "Mannerheimintie 1",
		ZoneID:           &zone.ID,
	}).Return(&business.Customer{ID: uuid.New()}, nil)

	customer, err := service.ResolveCustomer(ctx, services.ResolveCustomerParams{
		NationalIDNumber: "010190-123A",
		Email:            "maija@example.com",
	})
	require.NoError(t, err)
	assert.NotNil(t, customer)
}

func TestResolveCustomer_ExistingKeepsContactDetails(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	vehicles := mocks.NewMockVehicleRegistryForTest(t)
	persons := mocks.NewMockPersonRegistryForTest(t)
	service := services.NewCustomerService(querier, vehicles, persons)
	ctx := context.Background()

	zone := &business.Zone{ID: uuid.New(), Name: "K"}
	person := &dvv.Person{
		NationalID: "010190-123A",
		FirstName:  "Maija",
		LastName:   "Meikäläinen",
		Address:    "Mannerheimintie 1",
		ZoneName:   "K",
	}
	existing := &business.Customer{
		ID:               uuid.New(),
		NationalIDNumber: "010190-123A",
		Email:            "old@example.com",
		PhoneNumber:      "+358401234567",
	}

	persons.EXPECT().GetPerson(ctx, "010190-123A").Return(person, nil)
	querier.EXPECT().GetZoneByName(ctx, "K").Return(zone, nil)
	querier.EXPECT().GetCustomerByNationalID(ctx, "010190-123A").Return(existing, nil)
	// blank request fields keep the stored contact details
	querier.EXPECT().UpdateCustomer(ctx, db.UpdateCustomerParams{
		ID:          existing.ID,
		FirstName:   "Maija",
		LastName:    "Meikäläinen",
		Email:       "old@example.com",
		PhoneNumber: "+358401234567",
		Language:    "fi",
		Address:     "Mannerheimintie 1",
		ZoneID:      &zone.ID,
	}).Return(existing, nil)

	_, err := service.ResolveCustomer(ctx, services.ResolveCustomerParams{
		NationalIDNumber: "010190-123A",
	})
	require.NoError(t, err)
}

func TestResolveCustomer_UnknownZoneTolerated(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	vehicles := mocks.NewMockVehicleRegistryForTest(t)
	persons := mocks.NewMockPersonRegistryForTest(t)
	service := services.NewCustomerService(querier, vehicles, persons)
	ctx := context.Background()

	person := &dvv.Person{
		NationalID: "010190-123A",
		FirstName:  "Maija",
		LastName:   "Meikäläinen",
		Address:    "Outside the permit area 5",
		ZoneName:   "X",
	}

	persons.EXPECT().GetPerson(ctx, "010190-123A").Return(person, nil)
	querier.EXPECT().GetZoneByName(ctx, "X").Return(nil, errors.New("no rows"))
	querier.EXPECT().GetCustomerByNationalID(ctx, "010190-123A").Return(nil, nil)
	querier.EXPECT().CreateCustomer(ctx, db.CreateCustomerParams{
		FirstName:        "Maija",
		LastName:         "Meikäläinen",
		NationalIDNumber: "010190-123A",
		Language:         "fi",
		Address:          "Outside the permit area 5",
		ZoneID:           nil,
	}).Return(&business.Customer{ID: uuid.New()}, nil)

	customer, err := service.ResolveCustomer(ctx, services.ResolveCustomerParams{
		NationalIDNumber: "010190-123A",
	})
	require.NoError(t, err)
	assert.Nil(t, customer.ZoneID)
}

func TestFetchVehicle(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	vehicles := mocks.NewMockVehicleRegistryForTest(t)
	persons := mocks.NewMockPersonRegistryForTest(t)
	service := services.NewCustomerService(querier, vehicles, persons)
	ctx := context.Background()

	registryVehicle := &business.Vehicle{
		RegistrationNumber: "ABC-123",
		Manufacturer:       "Skoda",
		Model:              "Octavia",
		PowerType:          "electric",
		IsLowEmission:      true,
	}
	stored := &business.Vehicle{ID: uuid.New(), RegistrationNumber: "ABC-123", IsLowEmission: true}

	vehicles.EXPECT().GetVehicle(ctx, "ABC-123", "010190-123A").Return(registryVehicle, nil)
	querier.EXPECT().UpsertVehicle(ctx, db.UpsertVehicleParams{
		RegistrationNumber: "ABC-123",
		Manufacturer:       "Skoda",
		Model:              "Octavia",
		PowerType:          "electric",
		IsLowEmission:      true,
	}).Return(stored, nil)

	vehicle, err := service.FetchVehicle(ctx, "ABC-123", "010190-123A")
	require.NoError(t, err)
	assert.Equal(t, stored, vehicle)
}

func TestVerifyDrivingLicence(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	vehicles := mocks.NewMockVehicleRegistryForTest(t)
	persons := mocks.NewMockPersonRegistryForTest(t)
	service := services.NewCustomerService(querier, vehicles, persons)
	ctx := context.Background()

	vehicles.EXPECT().HasActiveDrivingLicence(ctx, "010190-123A").Return(true, nil)
	assert.NoError(t, service.VerifyDrivingLicence(ctx, "010190-123A"))

	vehicles.EXPECT().HasActiveDrivingLicence(ctx, "020285-456B").Return(false, nil)
	assert.ErrorIs(t, service.VerifyDrivingLicence(ctx, "020285-456B"), services.ErrNoDrivingLicence)
}
