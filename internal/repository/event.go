package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const eventColumns = `id, title, annotation, description, event_date, participant_limit,
					  request_moderation, state, initiator_id, created_at, published_at`

type EventRepository struct {
	executor
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{executor{db: db, strategy: defaultStrategy()}}
}

func scanEvent(s scanner) (*domain.Event, error) {
	var (
		e           domain.Event
		publishedAt sql.NullTime
	)
	if err := s.Scan(
		&e.ID, &e.Title, &e.Annotation, &e.Description, &e.EventDate,
		&e.ParticipantLimit, &e.RequestModeration, &e.State, &e.InitiatorID,
		&e.CreatedAt, &publishedAt,
	); err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		e.PublishedAt = &t
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.exec(
		ctx, query,
		e.ID, e.Title, e.Annotation, e.Description, e.EventDate,
		e.ParticipantLimit, e.RequestModeration, e.State, e.InitiatorID,
		e.CreatedAt, e.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *EventRepository) GetOwnedBy(ctx context.Context, id, initiatorID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND initiator_id = $2`
	return r.get(ctx, query, id, initiatorID)
}

func (r *EventRepository) LockByID(ctx context.Context, id string) (*domain.Event, error) {
	if _, ok := txFrom(ctx); !ok {
		return nil, errNoTx
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

func (r *EventRepository) LockOwnedBy(ctx context.Context, id, initiatorID string) (*domain.Event, error) {
	if _, ok := txFrom(ctx); !ok {
		return nil, errNoTx
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND initiator_id = $2 FOR UPDATE`
	return r.get(ctx, query, id, initiatorID)
}

func (r *EventRepository) get(ctx context.Context, query string, args ...any) (*domain.Event, error) {
	row, err := r.queryRow(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) ListByInitiator(ctx context.Context, initiatorID string, page domain.Page) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE initiator_id = $1
			  ORDER BY event_date DESC, id
			  LIMIT $2 OFFSET $3`

	return r.list(ctx, query, initiatorID, page.Size, page.From)
}

func (r *EventRepository) ListPublished(ctx context.Context, page domain.Page) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE state = $1
			  ORDER BY event_date DESC, id
			  LIMIT $2 OFFSET $3`

	return r.list(ctx, query, domain.EventStatePublished, page.Size, page.From)
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) UpdateState(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET state = $2, published_at = $3 WHERE id = $1`

	res, err := r.exec(ctx, query, e.ID, e.State, e.PublishedAt)
	if err != nil {
		return fmt.Errorf("update event state: %w", err)
	}

	return eventAffected(res)
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, annotation = $3, description = $4, event_date = $5,
			      participant_limit = $6, request_moderation = $7, state = $8
			  WHERE id = $1`

	res, err := r.exec(
		ctx, query,
		e.ID, e.Title, e.Annotation, e.Description, e.EventDate,
		e.ParticipantLimit, e.RequestModeration, e.State,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return eventAffected(res)
}

func eventAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
