package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const requestColumns = `id, event_id, requester_id, status, created_at`

type RequestRepository struct {
	executor
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{executor{db: db, strategy: defaultStrategy()}}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(s scanner) (*domain.ParticipationRequest, error) {
	var r domain.ParticipationRequest
	if err := s.Scan(&r.ID, &r.EventID, &r.RequesterID, &r.Status, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ParticipationRequest) error {
	query := `INSERT INTO participation_requests (id, event_id, requester_id, status, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := r.exec(ctx, query, req.ID, req.EventID, req.RequesterID, req.Status, req.CreatedAt)
	if err != nil {
		// частичный уникальный индекс по активным заявкам
		if isUniqueViolation(err) {
			return domain.ErrRequestExists
		}
		return fmt.Errorf("insert request: %w", err)
	}

	return nil
}

func (r *RequestRepository) GetByIDAndRequester(ctx context.Context, id, requesterID string) (*domain.ParticipationRequest, error) {
	query := `SELECT ` + requestColumns + `
			  FROM participation_requests
			  WHERE id = $1 AND requester_id = $2`

	row, err := r.queryRow(ctx, query, id, requesterID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return req, nil
}

func (r *RequestRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.ParticipationRequest, error) {
	query := `SELECT ` + requestColumns + `
			  FROM participation_requests
			  WHERE id = ANY($1)
			  ORDER BY created_at, id`

	return r.list(ctx, query, pq.Array(ids))
}

func (r *RequestRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.ParticipationRequest, error) {
	query := `SELECT ` + requestColumns + `
			  FROM participation_requests
			  WHERE event_id = $1
			  ORDER BY created_at, id`

	return r.list(ctx, query, eventID)
}

func (r *RequestRepository) ListByEventAndStatus(
	ctx context.Context,
	eventID string,
	status domain.RequestStatus,
) ([]*domain.ParticipationRequest, error) {
	query := `SELECT ` + requestColumns + `
			  FROM participation_requests
			  WHERE event_id = $1 AND status = $2
			  ORDER BY created_at, id`

	return r.list(ctx, query, eventID, status)
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error) {
	query := `SELECT ` + requestColumns + `
			  FROM participation_requests
			  WHERE requester_id = $1
			  ORDER BY created_at, id`

	return r.list(ctx, query, requesterID)
}

func (r *RequestRepository) list(ctx context.Context, query string, args ...any) ([]*domain.ParticipationRequest, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.ParticipationRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, req)
	}

	return res, rows.Err()
}

func (r *RequestRepository) ExistsActive(ctx context.Context, requesterID, eventID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM participation_requests
				WHERE requester_id = $1 AND event_id = $2 AND status = ANY($3)
			  )`

	active := make([]string, 0, len(domain.ActiveStatuses))
	for _, st := range domain.ActiveStatuses {
		active = append(active, string(st))
	}

	row, err := r.queryRow(ctx, query, requesterID, eventID, pq.Array(active))
	if err != nil {
		return false, fmt.Errorf("check active request: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}

	return exists, nil
}

func (r *RequestRepository) CountByEventAndStatus(ctx context.Context, eventID string, status domain.RequestStatus) (int, error) {
	query := `SELECT COUNT(*) FROM participation_requests WHERE event_id = $1 AND status = $2`

	row, err := r.queryRow(ctx, query, eventID, status)
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

func (r *RequestRepository) CountConfirmedByEvents(ctx context.Context, eventIDs []string) (map[string]int, error) {
	query := `SELECT event_id, COUNT(*)
			  FROM participation_requests
			  WHERE event_id = ANY($1) AND status = $2
			  GROUP BY event_id`

	rows, err := r.query(ctx, query, pq.Array(eventIDs), domain.RequestStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed by events: %w", err)
	}
	defer rows.Close()

	res := make(map[string]int, len(eventIDs))
	for rows.Next() {
		var (
			eventID string
			count   int
		)
		if err = rows.Scan(&eventID, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		res[eventID] = count
	}

	return res, rows.Err()
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, ids []string, status domain.RequestStatus) error {
	query := `UPDATE participation_requests SET status = $2 WHERE id = ANY($1)`

	res, err := r.exec(ctx, query, pq.Array(ids), status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("request rows affected: %w", err)
	}
	if int(affected) != len(ids) {
		return fmt.Errorf("%w: updated %d of %d", domain.ErrRequestNotFound, affected, len(ids))
	}

	return nil
}
