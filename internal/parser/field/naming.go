package field

import "github.com/griffnb/core-openapify/internal/domain"

// FieldForAccessor finds the declared property an accessor method reads or
// writes. The accessor prefix is stripped and the first rune lowered; the
// remainder as written is tried next.
func FieldForAccessor(class *domain.Class, methodName string) (*domain.Property, bool) {
	if class == nil || methodName == "" {
		return nil, false
	}
	for _, candidate := range domain.FieldNameCandidates(methodName) {
		if prop, ok := class.Property(candidate); ok {
			return prop, true
		}
	}
	return nil, false
}
