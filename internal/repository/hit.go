package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type HitRepository struct {
	executor
}

func NewHitRepo(db *dbpg.DB) *HitRepository {
	return &HitRepository{executor{db: db, strategy: defaultStrategy()}}
}

func (r *HitRepository) SaveBatch(ctx context.Context, hits []domain.Hit) error {
	if len(hits) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO hits (app, uri, ip, created_at) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("prepare insert hit: %w", err)
	}
	defer stmt.Close()

	for _, h := range hits {
		if _, err = stmt.ExecContext(ctx, h.App, h.URI, h.IP, h.Timestamp); err != nil {
			return fmt.Errorf("insert hit: %w", err)
		}
	}

	return tx.Commit()
}

func (r *HitRepository) ViewStats(ctx context.Context, params domain.ViewStatsParams) ([]domain.ViewStats, error) {
	counter := `COUNT(*)`
	if params.Unique {
		counter = `COUNT(DISTINCT ip)`
	}

	query := `SELECT app, uri, ` + counter + ` AS hits
			  FROM hits
			  WHERE created_at BETWEEN $1 AND $2
			    AND (COALESCE(cardinality($3::text[]), 0) = 0 OR uri = ANY($3::text[]))
			  GROUP BY app, uri
			  ORDER BY hits DESC, app, uri`

	var uris any
	if len(params.URIs) > 0 {
		uris = pq.Array(params.URIs)
	}

	rows, err := r.query(ctx, query, params.Start, params.End, uris)
	if err != nil {
		return nil, fmt.Errorf("view stats: %w", err)
	}
	defer rows.Close()

	res := make([]domain.ViewStats, 0)
	for rows.Next() {
		var v domain.ViewStats
		if err = rows.Scan(&v.App, &v.URI, &v.Hits); err != nil {
			return nil, fmt.Errorf("scan view stats: %w", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}
