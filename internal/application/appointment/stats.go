package appointment

import (
	"context"

	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
)

// TopServicesLimit cantidad de servicios en el ranking del tablero.
const TopServicesLimit = 5

// StatsUseCase agregados del tablero de citas.
type StatsUseCase struct {
	appointments repository.AppointmentRepository
	customers    repository.AccountRepository
	services     repository.ServiceRepository
}

func NewStatsUseCase(appointments repository.AppointmentRepository, customers repository.AccountRepository, services repository.ServiceRepository) *StatsUseCase {
	return &StatsUseCase{appointments: appointments, customers: customers, services: services}
}

// Get calcula totales por estado, servicios más pedidos, clientes y servicios.
func (uc *StatsUseCase) Get(ctx context.Context) (*dto.AppointmentStatsResponse, error) {
	byState, err := uc.appointments.CountByState(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.appointments.TopServices(ctx, TopServicesLimit)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customers.Count(ctx)
	if err != nil {
		return nil, err
	}
	services, err := uc.services.Count(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.AppointmentStatsResponse{
		ByState:        make(map[string]int64, len(entity.AppointmentStates)),
		TopServices:    make([]dto.ServiceUsageItem, 0, len(top)),
		TotalCustomers: customers,
		TotalServices:  services,
	}
	for _, st := range entity.AppointmentStates {
		out.ByState[string(st)] = 0
	}
	for st, n := range byState {
		out.ByState[string(st)] = n
		out.TotalAppointments += n
	}
	for _, u := range top {
		out.TopServices = append(out.TopServices, dto.ServiceUsageItem{Name: u.Name, Count: u.Count})
	}
	return out, nil
}
