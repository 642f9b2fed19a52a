package dto

import "time"

// CreateServiceRequest alta de servicio. Price en pesos, sin decimales.
type CreateServiceRequest struct {
	Name            string  `json:"name" validate:"required,max=120"`
	Description     *string `json:"description" validate:"omitempty,max=500"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Price           int64   `json:"price" validate:"gte=0"`
	ImgPath         string  `json:"img_path" validate:"required"`
}

// UpdateServiceRequest campos permitidos en PATCH /services/:id.
type UpdateServiceRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description     *string `json:"description" validate:"omitempty,max=500"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	Price           *int64  `json:"price" validate:"omitempty,gte=0"`
	ImgPath         *string `json:"img_path" validate:"omitempty,min=1"`
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           int64     `json:"price"`
	ImgPath         string    `json:"img_path"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
