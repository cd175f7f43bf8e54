package memory

import (
	"fmt"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
	"github.com/markus-pettersen/logistics-simulation/pkg/domain/repositories"
)

// CalendarRepository provides in-memory calendar storage
type CalendarRepository struct {
	calendar *entities.Calendar
}

// NewCalendarRepository creates a new in-memory calendar repository
func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{}
}

// Verify interface compliance
var _ repositories.CalendarRepository = (*CalendarRepository)(nil)

// LoadCalendar loads the simulation calendar
func (r *CalendarRepository) LoadCalendar(calendar *entities.Calendar) error {
	if calendar == nil {
		return fmt.Errorf("calendar cannot be nil")
	}
	r.calendar = calendar
	return nil
}

// GetCalendar returns the simulation calendar
func (r *CalendarRepository) GetCalendar() (*entities.Calendar, error) {
	if r.calendar == nil {
		return nil, fmt.Errorf("no calendar loaded")
	}
	return r.calendar, nil
}
