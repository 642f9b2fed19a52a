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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// Tablas de cuentas.
const (
	TableUsers     = "users"
	TableEmployees = "employees"
)

const accountColumns = `id, first_name, last_name, email, phone, hashed_password, role, is_active, created_at, updated_at`

// AccountRepo un pool de cuentas sobre la tabla users o employees.
type AccountRepo struct {
	q     Querier
	table string
}

// NewAccountRepository construye el adaptador. table debe ser TableUsers o TableEmployees.
func NewAccountRepository(q Querier, table string) *AccountRepo {
	if table != TableUsers && table != TableEmployees {
		panic("postgres: tabla de cuentas desconocida " + table)
	}
	return &AccountRepo{q: q, table: table}
}

func (r *AccountRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`, r.table, accountColumns)
	_, err := r.q.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.Phone, user.PasswordHash,
		user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

func (r *AccountRepo) FindByField(ctx context.Context, field entity.LookupField, value string) (*entity.User, error) {
	var column string
	switch field {
	case entity.FieldID:
		if !validID(value) {
			return nil, nil
		}
		column = "id"
	case entity.FieldEmail:
		column = "email"
	default:
		return nil, fmt.Errorf("campo de búsqueda no soportado: %s", field)
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 LIMIT 1`, accountColumns, r.table, column)
	u, err := scanAccount(r.q.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s by %s: %w", r.table, field, err)
	}
	return u, nil
}

func (r *AccountRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at`, accountColumns, r.table)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *AccountRepo) Update(ctx context.Context, id string, patch entity.UserPatch, updatedAt time.Time) (*entity.User, error) {
	if !validID(id) {
		return nil, nil
	}
	sets := []string{"updated_at = $2"}
	args := []any{id, updatedAt}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1 RETURNING %s`,
		r.table, strings.Join(sets, ", "), accountColumns)
	u, err := scanAccount(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update %s: %w", r.table, err)
	}
	return u, nil
}

func (r *AccountRepo) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	tag, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AccountRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.table, err)
	}
	return n, nil
}

func scanAccount(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
