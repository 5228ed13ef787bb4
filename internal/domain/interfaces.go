package domain

// EnumLookup resolves known enumerations by the full name of their type.
type EnumLookup interface {
	LookupEnum(typeName string) (*Enum, bool)
}
