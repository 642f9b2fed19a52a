package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// Las columnas desnormalizadas pueden ser NULL en filas heredadas.
const appointmentColumns = `id, user_id, employee_id, service_ids, appointment_date,
	COALESCE(user_name, ''), COALESCE(employee_name, ''), service_names,
	total_cost, state, created_at, updated_at`

// AppointmentRepo implementación de AppointmentRepository.
type AppointmentRepo struct {
	q Querier
}

func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	serviceIDs := a.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []string{}
	}
	serviceNames := a.ServiceNames
	if serviceNames == nil {
		serviceNames = []string{}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO appointments (id, user_id, employee_id, service_ids, appointment_date,
			user_name, employee_name, service_names, total_cost, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.UserID, a.EmployeeID, serviceIDs, a.AppointmentDate,
		a.UserName, a.EmployeeName, serviceNames, a.TotalCost, string(a.State), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	if !validID(id) {
		return nil, nil
	}
	a, err := scanAppointment(r.q.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

func (r *AppointmentRepo) List(ctx context.Context) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *AppointmentRepo) Update(ctx context.Context, id string, patch entity.AppointmentPatch) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	sets := []string{"updated_at = $2"}
	args := []any{id, patch.UpdatedAt}
	if patch.State != nil {
		args = append(args, string(*patch.State))
		sets = append(sets, fmt.Sprintf("state = $%d", len(args)))
	}
	if patch.AppointmentDate != nil {
		args = append(args, *patch.AppointmentDate)
		sets = append(sets, fmt.Sprintf("appointment_date = $%d", len(args)))
	}
	tag, err := r.q.Exec(ctx, `UPDATE appointments SET `+strings.Join(sets, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		return false, fmt.Errorf("update appointment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete appointment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AppointmentRepo) CountByState(ctx context.Context) (map[entity.AppointmentState]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT state, COUNT(*) FROM appointments GROUP BY state`)
	if err != nil {
		return nil, fmt.Errorf("count by state: %w", err)
	}
	defer rows.Close()
	out := make(map[entity.AppointmentState]int64)
	for rows.Next() {
		var state string
		var n int64
		if err := rows.Scan(&state, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out[entity.AppointmentState(state)] = n
	}
	return out, rows.Err()
}

func (r *AppointmentRepo) TopServices(ctx context.Context, limit int) ([]entity.ServiceUsage, error) {
	rows, err := r.q.Query(ctx, `
		SELECT name, COUNT(*) AS total
		FROM appointments, UNNEST(service_names) AS name
		GROUP BY name
		ORDER BY total DESC, name
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top services: %w", err)
	}
	defer rows.Close()
	out := make([]entity.ServiceUsage, 0, limit)
	for rows.Next() {
		var u entity.ServiceUsage
		if err := rows.Scan(&u.Name, &u.Count); err != nil {
			return nil, fmt.Errorf("scan top services: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	var state string
	err := row.Scan(&a.ID, &a.UserID, &a.EmployeeID, &a.ServiceIDs, &a.AppointmentDate,
		&a.UserName, &a.EmployeeName, &a.ServiceNames, &a.TotalCost, &state, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.State = entity.AppointmentState(state)
	return &a, nil
}
