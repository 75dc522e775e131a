package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/citypermits/permits-api/internal/types/business"
)

// CreatePermitEventParams contains the parameters for one audit row.
type CreatePermitEventParams struct {
	PermitID  uuid.UUID
	Type      string
	Key       string
	Message   string
	Context   map[string]interface{}
	CreatedBy string
}

// CreatePermitEvent appends an audit row to a permit's history.
func (q *Queries) CreatePermitEvent(ctx context.Context, params CreatePermitEventParams) (*business.PermitEvent, error) {
	eventContext := params.Context
	if eventContext == nil {
		eventContext = map[string]interface{}{}
	}
	contextJSON, err := json.Marshal(eventContext)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event context: %w", err)
	}

	sql, args, err := builder().
		Insert("permit_events").
		Columns("permit_id", "type", "key", "message", "context", "created_by").
		Values(params.PermitID, params.Type, params.Key, params.Message, contextJSON, params.CreatedBy).
		Suffix("RETURNING id, permit_id, type, key, message, context, created_by, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create event query: %w", err)
	}

	event, err := scanPermitEvent(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to create permit event: %w", err)
	}
	return event, nil
}

// ListPermitEvents returns a permit's audit history, newest first.
func (q *Queries) ListPermitEvents(ctx context.Context, permitID uuid.UUID) ([]*business.PermitEvent, error) {
	sql, args, err := builder().
		Select("id", "permit_id", "type", "key", "message", "context", "created_by", "created_at").
		From("permit_events").
		Where(squirrel.Eq{"permit_id": permitID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list permit events: %w", err)
	}
	defer rows.Close()

	var events []*business.PermitEvent
	for rows.Next() {
		event, err := scanPermitEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan permit event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func scanPermitEvent(row pgx.Row) (*business.PermitEvent, error) {
	var (
		event       business.PermitEvent
		contextJSON []byte
	)
	err := row.Scan(&event.ID, &event.PermitID, &event.Type, &event.Key,
		&event.Message, &contextJSON, &event.CreatedBy, &event.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(contextJSON) > 0 {
		if err := json.Unmarshal(contextJSON, &event.Context); err != nil {
			return nil, fmt.Errorf("failed to decode event context: %w", err)
		}
	}
	return &event, nil
}
