package dto

import "time"

// CreateAccountRequest alta de cliente o empleado (password en texto, se hashea en el use case).
type CreateAccountRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email_co"`
	Phone     string `json:"phone" validate:"required,phone_co"`
	Password  string `json:"password" validate:"required,min=6"`
}

// UpdateAccountRequest campos permitidos en PATCH /users/:id y /employees/:id. nil = sin cambio.
type UpdateAccountRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email_co"`
	Phone     *string `json:"phone" validate:"omitempty,phone_co"`
	IsActive  *bool   `json:"is_active"`
}

// AccountResponse salida de una cuenta (sin password).
type AccountResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedAtLabel string    `json:"created_at_label"`
	UpdatedAt      time.Time `json:"updated_at"`
	UpdatedAtLabel string    `json:"updated_at_label"`
}
