package registry

import (
	"github.com/griffnb/core-openapify/internal/console"
	"github.com/griffnb/core-openapify/internal/domain"
)

// RegisterEnum indexes an enumeration by its type name. The first
// registration of a type name wins; later ones are reported and ignored.
func (s *Service) RegisterEnum(e *domain.Enum) bool {
	if e == nil || e.TypeName == "" {
		return false
	}
	if s.enums == nil {
		s.enums = make(map[string]*domain.Enum)
	}
	if _, ok := s.enums[e.TypeName]; ok {
		console.Logger.Debug("$Faint{enum %s already registered, ignoring duplicate}", e.TypeName)
		s.debugf("registry: duplicate enum %s", e.TypeName)
		return false
	}
	s.enums[e.TypeName] = e
	return true
}

// Enums returns the number of registered enumerations.
func (s *Service) Enums() int {
	return len(s.enums)
}
