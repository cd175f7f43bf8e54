package repositories

import "github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"

// CalendarRepository provides access to the simulation date range
type CalendarRepository interface {
	GetCalendar() (*entities.Calendar, error)
	LoadCalendar(calendar *entities.Calendar) error
}
