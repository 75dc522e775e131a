package db

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/citypermits/permits-api/internal/types/business"
)

var vehicleColumns = []string{
	"id", "registration_number", "manufacturer", "model", "power_type",
	"euro_class", "emission", "emission_type", "is_low_emission", "serial_number",
}

// UpsertVehicleParams contains the registry-sourced vehicle fields. The
// registration number is the natural key, so a repeated lookup refreshes
// the stored record instead of duplicating it.
type UpsertVehicleParams struct {
	RegistrationNumber string
	Manufacturer       string
	Model              string
	PowerType          string
	EuroClass          int
	Emission           int
	EmissionType       string
	IsLowEmission      bool
	SerialNumber       string
}

// UpsertVehicle inserts a vehicle or refreshes the stored registry data.
func (q *Queries) UpsertVehicle(ctx context.Context, params UpsertVehicleParams) (*business.Vehicle, error) {
	sql, args, err := builder().
		Insert("vehicles").
		Columns("registration_number", "manufacturer", "model", "power_type",
			"euro_class", "emission", "emission_type", "is_low_emission", "serial_number").
		Values(params.RegistrationNumber, params.Manufacturer, params.Model, params.PowerType,
			params.EuroClass, params.Emission, params.EmissionType, params.IsLowEmission, params.SerialNumber).
		Suffix(`ON CONFLICT (registration_number) DO UPDATE SET
			manufacturer = EXCLUDED.manufacturer,
			model = EXCLUDED.model,
			power_type = EXCLUDED.power_type,
			euro_class = EXCLUDED.euro_class,
			emission = EXCLUDED.emission,
			emission_type = EXCLUDED.emission_type,
			is_low_emission = EXCLUDED.is_low_emission,
			serial_number = EXCLUDED.serial_number,
			updated_at = now()
		RETURNING ` + joinColumns(vehicleColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upsert vehicle query: %w", err)
	}

	vehicle, err := scanVehicle(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert vehicle: %w", err)
	}
	return vehicle, nil
}

// GetVehicle returns a vehicle by id.
func (q *Queries) GetVehicle(ctx context.Context, id uuid.UUID) (*business.Vehicle, error) {
	return q.getVehicle(ctx, squirrel.Eq{"id": id})
}

// GetVehicleByRegistration returns a vehicle by registration number.
// Returns (nil, nil) when the vehicle has never been looked up.
func (q *Queries) GetVehicleByRegistration(ctx context.Context, registrationNumber string) (*business.Vehicle, error) {
	vehicle, err := q.getVehicle(ctx, squirrel.Eq{"registration_number": registrationNumber})
	if err != nil && noRows(err) {
		return nil, nil
	}
	return vehicle, err
}

func (q *Queries) getVehicle(ctx context.Context, pred squirrel.Eq) (*business.Vehicle, error) {
	sql, args, err := builder().
		Select(vehicleColumns...).
		From("vehicles").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get vehicle query: %w", err)
	}
	return scanVehicle(q.db.QueryRow(ctx, sql, args...))
}

func scanVehicle(row pgx.Row) (*business.Vehicle, error) {
	var vehicle business.Vehicle
	err := row.Scan(&vehicle.ID, &vehicle.RegistrationNumber, &vehicle.Manufacturer,
		&vehicle.Model, &vehicle.PowerType, &vehicle.EuroClass, &vehicle.Emission,
		&vehicle.EmissionType, &vehicle.IsLowEmission, &vehicle.SerialNumber)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}
