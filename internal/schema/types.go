package schema

import (
	"strconv"
	"strings"
)

const (
	// ARRAY represent a array value.
	ARRAY = "array"
	// OBJECT represent a object value.
	OBJECT = "object"
	// BOOLEAN represent a boolean value.
	BOOLEAN = "boolean"
	// INTEGER represent a integer value.
	INTEGER = "integer"
	// NUMBER represent a number value.
	NUMBER = "number"
	// STRING represent a string value.
	STRING = "string"
)

// valueType is the schema type and format a model value type maps to.
type valueType struct {
	schemaType string
	format     string
}

// valueTypes maps the value types of generated classes, keyed by full name
// and by primitive name, to schema types.
var valueTypes = map[string]valueType{
	"java.lang.String":                        {STRING, ""},
	"java.lang.Boolean":                       {BOOLEAN, ""},
	"boolean":                                 {BOOLEAN, ""},
	"java.lang.Byte":                          {INTEGER, "int32"},
	"byte":                                    {INTEGER, "int32"},
	"java.lang.Short":                         {INTEGER, "int32"},
	"short":                                   {INTEGER, "int32"},
	"java.lang.Integer":                       {INTEGER, "int32"},
	"int":                                     {INTEGER, "int32"},
	"java.lang.Long":                          {INTEGER, "int64"},
	"long":                                    {INTEGER, "int64"},
	"java.math.BigInteger":                    {INTEGER, ""},
	"java.lang.Float":                         {NUMBER, "float"},
	"float":                                   {NUMBER, "float"},
	"java.lang.Double":                        {NUMBER, "double"},
	"double":                                  {NUMBER, "double"},
	"java.math.BigDecimal":                    {NUMBER, ""},
	"byte[]":                                  {STRING, "byte"},
	"javax.xml.datatype.XMLGregorianCalendar": {STRING, "date-time"},
	"java.time.OffsetDateTime":                {STRING, "date-time"},
	"java.time.LocalDate":                     {STRING, "date"},
	"java.util.Date":                          {STRING, "date-time"},
	"javax.xml.datatype.Duration":             {STRING, "duration"},
	"javax.xml.namespace.QName":               {STRING, ""},
	"java.net.URI":                            {STRING, "uri"},
}

// TypeOf returns the schema type and format of a value type name. Unknown
// names, including enumerations, are reported as strings.
func TypeOf(name string) (string, string) {
	if vt, ok := valueTypes[name]; ok {
		return vt.schemaType, vt.format
	}
	return STRING, ""
}

// IsKnownType reports whether name maps to a schema type other than the string fallback.
func IsKnownType(name string) bool {
	_, ok := valueTypes[name]
	return ok
}

// DefineType converts a lexical value to the Go value of the given schema
// type. Values that do not parse are kept as strings.
func DefineType(schemaType string, value string) interface{} {
	switch schemaType {
	case INTEGER:
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	case NUMBER:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	case BOOLEAN:
		if v, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return v
		}
	}
	return value
}
