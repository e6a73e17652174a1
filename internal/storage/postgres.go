package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/serenedesk/internal"
)

const exportsSchema = `CREATE TABLE IF NOT EXISTS exports (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	session_id TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	payload    JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_exports_user ON exports (user_id, created_at DESC);`

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	if _, err := pool.Exec(ctx, exportsSchema); err != nil {
		logger.Errorf("failed to ensure exports schema: %v", err)
		pool.Close()
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

// --- ExportRepository ---
func (p *PostgresStorage) SaveExport(ctx context.Context, rec *internal.ExportRecord) error {
	payload, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `INSERT INTO exports (id, user_id, session_id, created_at, payload) VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.UserID, rec.SessionID, rec.CreatedAt, payload)
	if err != nil {
		p.logger.Errorf("failed to insert export: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListExports(ctx context.Context, userID string, limit int) ([]internal.ExportRecord, error) {
	query := `SELECT id, user_id, session_id, created_at, payload FROM exports WHERE user_id = $1 ORDER BY created_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Errorf("failed to query exports: %v", err)
		return nil, err
	}
	defer rows.Close()

	recs := []internal.ExportRecord{}
	for rows.Next() {
		rec, err := scanExport(rows)
		if err != nil {
			p.logger.Errorf("failed to scan export: %v", err)
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

func (p *PostgresStorage) GetExport(ctx context.Context, userID, id string) (*internal.ExportRecord, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, user_id, session_id, created_at, payload FROM exports WHERE user_id = $1 AND id = $2`, userID, id)
	rec, err := scanExport(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, internal.NewNotFoundError("export", id)
	}
	if err != nil {
		p.logger.Errorf("failed to load export: %v", err)
		return nil, err
	}
	return rec, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

func scanExport(row pgx.Row) (*internal.ExportRecord, error) {
	var rec internal.ExportRecord
	var payload []byte
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.SessionID, &rec.CreatedAt, &payload); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &rec.Snapshot); err != nil {
		return nil, err
	}
	return &rec, nil
}

// --- Compile-time assertions ---
var _ ExportRepository = (*PostgresStorage)(nil)
