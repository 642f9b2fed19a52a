package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceColumns = `id, name, description, duration_minutes, price, img_path, created_at, updated_at`

// ServiceRepo implementación de ServiceRepository.
type ServiceRepo struct {
	q Querier
}

func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO services (`+serviceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.Name, s.Description, s.DurationMinutes, s.Price, s.ImgPath, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrServiceNameExists
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.findOne(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
}

func (r *ServiceRepo) GetByName(ctx context.Context, name string) (*entity.Service, error) {
	return r.findOne(ctx, `SELECT `+serviceColumns+` FROM services WHERE name = $1`, name)
}

func (r *ServiceRepo) findOne(ctx context.Context, query string, arg any) (*entity.Service, error) {
	s, err := scanService(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

func (r *ServiceRepo) List(ctx context.Context) ([]*entity.Service, error) {
	rows, err := r.q.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *ServiceRepo) Update(ctx context.Context, id string, patch entity.ServicePatch, updatedAt time.Time) (*entity.Service, error) {
	if !validID(id) {
		return nil, nil
	}
	sets := []string{"updated_at = $2"}
	args := []any{id, updatedAt}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.DurationMinutes != nil {
		add("duration_minutes", *patch.DurationMinutes)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.ImgPath != nil {
		add("img_path", *patch.ImgPath)
	}
	query := `UPDATE services SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + serviceColumns
	s, err := scanService(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrServiceNameExists
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return s, nil
}

func (r *ServiceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	return n, nil
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price, &s.ImgPath, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
