package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"logisa-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]*Material, error)
	// GetByID returns (nil, nil) when the material does not exist so that
	// callers decide how a miss is handled.
	GetByID(ctx context.Context, id string) (*Material, error)
	ListGroups(ctx context.Context) ([]*MaterialGroup, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]*Material, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	start := time.Now()

	where := []string{"1=1"}
	args := []any{}

	if opts.GroupID != "" {
		where = append(where, fmt.Sprintf("group_id = $%d", len(args)+1))
		args = append(args, opts.GroupID)
	}
	if opts.Search != "" {
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)+1))
		args = append(args, "%"+opts.Search+"%")
	}

	query := `
	SELECT id, name, description, price, quantity, image, group_id, specifications, pdf_ref
	FROM materials
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	result := make([]*Material, 0)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Material, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, name, description, price, quantity, image, group_id, specifications, pdf_ref
	FROM materials
	WHERE id = $1`, id)

	m, err := scanMaterial(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repository) ListGroups(ctx context.Context) ([]*MaterialGroup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM material_groups ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*MaterialGroup, 0)
	for rows.Next() {
		g := &MaterialGroup{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMaterial(row scanner) (*Material, error) {
	m := &Material{}
	var specs []byte

	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.Quantity,
		&m.Image,
		&m.GroupID,
		&specs,
		&m.PDFRef,
	)
	if err != nil {
		return nil, err
	}

	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &m.Specifications); err != nil {
			return nil, fmt.Errorf("malformed specifications for %s: %w", m.ID, err)
		}
	}

	return m, nil
}
