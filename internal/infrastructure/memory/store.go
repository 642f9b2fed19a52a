// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa con DB_DRIVER=memory (desarrollo local) y en los tests.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
)

// Store agrupa las cuatro colecciones.
type Store struct {
	Users        *AccountRepo
	Employees    *AccountRepo
	Services     *ServiceRepo
	Appointments *AppointmentRepo
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		Users:        NewAccountRepository(),
		Employees:    NewAccountRepository(),
		Services:     NewServiceRepository(),
		Appointments: NewAppointmentRepository(),
	}
}

var (
	_ repository.AccountRepository     = (*AccountRepo)(nil)
	_ repository.ServiceRepository     = (*ServiceRepo)(nil)
	_ repository.AppointmentRepository = (*AppointmentRepo)(nil)
)

func newID() string {
	return uuid.New().String()
}

// collection mapa protegido que conserva el orden de inserción.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]*T)}
}

func (c *collection[T]) insert(id string, v *T) {
	c.items[id] = v
	c.order = append(c.order, id)
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) each(fn func(*T)) {
	for _, id := range c.order {
		fn(c.items[id])
	}
}

func sortUsage(list []entity.ServiceUsage) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Count != list[j].Count {
			return list[i].Count > list[j].Count
		}
		return list[i].Name < list[j].Name
	})
}
