package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/types/business"
)

var permitColumns = []string{
	"p.id", "p.customer_id", "p.vehicle_id", "p.zone_id", "z.name",
	"p.contract_type", "p.status", "p.start_time", "p.end_time",
	"p.month_count", "p.primary_vehicle",
	"v.registration_number", "v.is_low_emission",
}

// activePermitStatuses are the statuses that block a duplicate permit
// for the same vehicle.
var activePermitStatuses = []string{
	constants.PermitStatusDraft,
	constants.PermitStatusPreliminary,
	constants.PermitStatusPaymentInProgress,
	constants.PermitStatusValid,
}

func permitsQuery() squirrel.SelectBuilder {
	return builder().
		Select(permitColumns...).
		From("permits p").
		Join("zones z ON z.id = p.zone_id").
		Join("vehicles v ON v.id = p.vehicle_id")
}

func scanPermit(row pgx.Row) (*business.Permit, error) {
	var permit business.Permit
	err := row.Scan(&permit.ID, &permit.CustomerID, &permit.VehicleID, &permit.ZoneID,
		&permit.ZoneName, &permit.ContractType, &permit.Status, &permit.StartTime,
		&permit.EndTime, &permit.MonthCount, &permit.PrimaryVehicle,
		&permit.VehicleRegistration, &permit.VehicleIsLowEmission)
	if err != nil {
		return nil, err
	}
	return &permit, nil
}

func (q *Queries) queryPermits(ctx context.Context, query squirrel.SelectBuilder) ([]*business.Permit, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build permits query: %w", err)
	}

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query permits: %w", err)
	}
	defer rows.Close()

	var permits []*business.Permit
	for rows.Next() {
		permit, err := scanPermit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan permit: %w", err)
		}
		permits = append(permits, permit)
	}
	return permits, rows.Err()
}

// CreatePermitParams contains the parameters for creating a draft permit.
type CreatePermitParams struct {
	CustomerID     uuid.UUID
	VehicleID      uuid.UUID
	ZoneID         uuid.UUID
	ContractType   string
	StartTime      time.Time
	EndTime        *time.Time
	MonthCount     int
	PrimaryVehicle bool
}

// CreatePermit inserts a new draft permit.
func (q *Queries) CreatePermit(ctx context.Context, params CreatePermitParams) (*business.Permit, error) {
	sql, args, err := builder().
		Insert("permits").
		Columns("customer_id", "vehicle_id", "zone_id", "contract_type",
			"status", "start_time", "end_time", "month_count", "primary_vehicle").
		Values(params.CustomerID, params.VehicleID, params.ZoneID, params.ContractType,
			constants.PermitStatusDraft, params.StartTime, params.EndTime,
			params.MonthCount, params.PrimaryVehicle).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create permit query: %w", err)
	}

	var id uuid.UUID
	if err := q.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create permit: %w", err)
	}
	return q.GetPermit(ctx, id)
}

// GetPermit returns a permit by id.
func (q *Queries) GetPermit(ctx context.Context, id uuid.UUID) (*business.Permit, error) {
	sql, args, err := permitsQuery().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get permit query: %w", err)
	}

	permit, err := scanPermit(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to get permit: %w", err)
	}
	return permit, nil
}

// ListPermitsForCustomer returns all of a customer's permits, newest
// start first.
func (q *Queries) ListPermitsForCustomer(ctx context.Context, customerID uuid.UUID) ([]*business.Permit, error) {
	return q.queryPermits(ctx, permitsQuery().
		Where(squirrel.Eq{"p.customer_id": customerID}).
		OrderBy("p.start_time DESC"))
}

// ListActivePermitsForCustomer returns the customer's permits that are
// not cancelled or closed, primary vehicle first.
func (q *Queries) ListActivePermitsForCustomer(ctx context.Context, customerID uuid.UUID) ([]*business.Permit, error) {
	return q.queryPermits(ctx, permitsQuery().
		Where(squirrel.Eq{"p.customer_id": customerID, "p.status": activePermitStatuses}).
		OrderBy("p.primary_vehicle DESC", "p.start_time"))
}

// CountActivePermitsForVehicle counts non-terminated permits attached to
// a vehicle. Used to block duplicate permits for the same vehicle.
func (q *Queries) CountActivePermitsForVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error) {
	sql, args, err := builder().
		Select("COUNT(*)").
		From("permits p").
		Where(squirrel.Eq{"p.vehicle_id": vehicleID, "p.status": activePermitStatuses}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count permits query: %w", err)
	}

	var count int
	if err := q.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count permits: %w", err)
	}
	return count, nil
}

// UpdatePermitStatus moves a permit to a new lifecycle status.
func (q *Queries) UpdatePermitStatus(ctx context.Context, id uuid.UUID, status string) (*business.Permit, error) {
	sql, args, err := builder().
		Update("permits").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update permit status query: %w", err)
	}

	if _, err := q.db.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("failed to update permit status: %w", err)
	}
	return q.GetPermit(ctx, id)
}

// EndPermit writes the permit's final end time, the end type requested
// and the resulting status.
func (q *Queries) EndPermit(ctx context.Context, id uuid.UUID, endTime time.Time, endType, status string) (*business.Permit, error) {
	sql, args, err := builder().
		Update("permits").
		Set("end_time", endTime).
		Set("end_type", endType).
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build end permit query: %w", err)
	}

	if _, err := q.db.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("failed to end permit: %w", err)
	}
	return q.GetPermit(ctx, id)
}

// UpdatePermitPeriod writes a new end time and month count after an
// extension or an open-ended renewal.
func (q *Queries) UpdatePermitPeriod(ctx context.Context, id uuid.UUID, endTime time.Time, monthCount int) (*business.Permit, error) {
	sql, args, err := builder().
		Update("permits").
		Set("end_time", endTime).
		Set("month_count", monthCount).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update permit period query: %w", err)
	}

	if _, err := q.db.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("failed to update permit period: %w", err)
	}
	return q.GetPermit(ctx, id)
}
