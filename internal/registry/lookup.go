package registry

import "github.com/griffnb/core-openapify/internal/domain"

var _ domain.EnumLookup = (*Service)(nil)

// LookupEnum returns the enumeration registered for typeName. Matching is exact.
func (s *Service) LookupEnum(typeName string) (*domain.Enum, bool) {
	e, ok := s.enums[typeName]
	return e, ok
}

// LookupClass returns the class registered under fullName.
func (s *Service) LookupClass(fullName string) (*domain.Class, bool) {
	c, ok := s.classes[fullName]
	return c, ok
}
