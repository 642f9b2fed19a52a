package entity

import "time"

// Service servicio ofrecido por la peluquería. Price en unidades menores (pesos, sin decimales).
type Service struct {
	ID              string
	Name            string
	Description     *string
	DurationMinutes int
	Price           int64
	ImgPath         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServicePatch campos modificables de un servicio.
type ServicePatch struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *int64
	ImgPath         *string
}

func (p ServicePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.DurationMinutes == nil && p.Price == nil && p.ImgPath == nil
}

func (p ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		d := *p.Description
		s.Description = &d
	}
	if p.DurationMinutes != nil {
		s.DurationMinutes = *p.DurationMinutes
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.ImgPath != nil {
		s.ImgPath = *p.ImgPath
	}
}
