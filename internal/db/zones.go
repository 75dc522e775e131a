package db

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/citypermits/permits-api/internal/types/business"
)

// CreateZoneParams contains the parameters for creating a parking zone.
type CreateZoneParams struct {
	Name        string
	Label       string
	Description string
}

// CreateZone inserts a new parking zone.
func (q *Queries) CreateZone(ctx context.Context, params CreateZoneParams) (*business.Zone, error) {
	sql, args, err := builder().
		Insert("zones").
		Columns("name", "label", "description").
		Values(params.Name, params.Label, params.Description).
		Suffix("RETURNING id, name, label, description").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create zone query: %w", err)
	}

	var zone business.Zone
	err = q.db.QueryRow(ctx, sql, args...).Scan(&zone.ID, &zone.Name, &zone.Label, &zone.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create zone: %w", err)
	}
	return &zone, nil
}

// GetZone returns a zone by id.
func (q *Queries) GetZone(ctx context.Context, id uuid.UUID) (*business.Zone, error) {
	return q.getZone(ctx, squirrel.Eq{"id": id})
}

// GetZoneByName returns a zone by its unique name.
func (q *Queries) GetZoneByName(ctx context.Context, name string) (*business.Zone, error) {
	return q.getZone(ctx, squirrel.Eq{"name": name})
}

func (q *Queries) getZone(ctx context.Context, pred squirrel.Eq) (*business.Zone, error) {
	sql, args, err := builder().
		Select("id", "name", "label", "description").
		From("zones").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get zone query: %w", err)
	}

	var zone business.Zone
	err = q.db.QueryRow(ctx, sql, args...).Scan(&zone.ID, &zone.Name, &zone.Label, &zone.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}
	return &zone, nil
}

// ListZones returns all parking zones ordered by name.
func (q *Queries) ListZones(ctx context.Context) ([]*business.Zone, error) {
	sql, args, err := builder().
		Select("id", "name", "label", "description").
		From("zones").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list zones query: %w", err)
	}

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	var zones []*business.Zone
	for rows.Next() {
		var zone business.Zone
		if err := rows.Scan(&zone.ID, &zone.Name, &zone.Label, &zone.Description); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, &zone)
	}
	return zones, rows.Err()
}
