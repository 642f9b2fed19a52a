package appointment

import (
	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/pkg/datefmt"
)

func toResponse(a *entity.Appointment) *dto.AppointmentResponse {
	serviceIDs := a.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []string{}
	}
	serviceNames := a.ServiceNames
	if serviceNames == nil {
		serviceNames = []string{}
	}
	return &dto.AppointmentResponse{
		ID:                   a.ID,
		UserID:               a.UserID,
		EmployeeID:           a.EmployeeID,
		ServiceIDs:           serviceIDs,
		AppointmentDate:      a.AppointmentDate,
		AppointmentDateLabel: datefmt.CO(a.AppointmentDate),
		UserName:             a.UserName,
		EmployeeName:         a.EmployeeName,
		ServiceNames:         serviceNames,
		TotalCost:            a.TotalCost,
		State:                string(a.State),
		CreatedAt:            a.CreatedAt,
		CreatedAtLabel:       datefmt.CO(a.CreatedAt),
		UpdatedAt:            a.UpdatedAt,
		UpdatedAtLabel:       datefmt.CO(a.UpdatedAt),
	}
}
