// Package registry indexes the classes and enumerations of a loaded model.
// It is the lookup table the enum resolver and the orchestrator read from.
package registry

import (
	"fmt"

	"github.com/griffnb/core-openapify/internal/domain"
)

// Service holds the classes of a model by full name and its enums by type name.
type Service struct {
	classes    map[string]*domain.Class
	classOrder []string
	enums      map[string]*domain.Enum
	debug      Debugger
}

// NewService creates a new registry service.
func NewService() *Service {
	return &Service{
		classes: make(map[string]*domain.Class),
		enums:   make(map[string]*domain.Enum),
	}
}

// SetDebugger sets the debugger.
func (s *Service) SetDebugger(debug Debugger) {
	s.debug = debug
}

// Register indexes every class and enum of m. Registering a class whose full
// name is already known is an error; duplicate enums are resolved by RegisterEnum.
func (s *Service) Register(m *domain.Model) error {
	if m == nil {
		return nil
	}
	for i := range m.Classes {
		if err := s.RegisterClass(&m.Classes[i]); err != nil {
			return err
		}
	}
	for i := range m.Enums {
		s.RegisterEnum(&m.Enums[i])
	}
	return nil
}

// RegisterClass indexes one class.
func (s *Service) RegisterClass(c *domain.Class) error {
	if s.classes == nil {
		s.classes = make(map[string]*domain.Class)
	}
	if _, ok := s.classes[c.FullName]; ok {
		return fmt.Errorf("class %s registered twice", c.FullName)
	}
	s.classes[c.FullName] = c
	s.classOrder = append(s.classOrder, c.FullName)
	return nil
}

// Classes returns the registered classes in registration order.
func (s *Service) Classes() []*domain.Class {
	out := make([]*domain.Class, 0, len(s.classOrder))
	for _, name := range s.classOrder {
		out = append(out, s.classes[name])
	}
	return out
}

// Len returns the number of registered classes.
func (s *Service) Len() int {
	return len(s.classOrder)
}

func (s *Service) debugf(format string, args ...interface{}) {
	if s.debug != nil {
		s.debug.Printf(format, args...)
	}
}
