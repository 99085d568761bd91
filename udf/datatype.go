package udf

import (
	"time"
)

// DataType is the type tag a host engine attaches to a schema field.
// The numeric values and names match the ones Pig uses, so that error
// messages read the same way a Pig user would expect.
type DataType byte

const (
	TypeUnknown    DataType = 0
	TypeNull       DataType = 1
	TypeBoolean    DataType = 5
	TypeByte       DataType = 6
	TypeInt        DataType = 10
	TypeLong       DataType = 15
	TypeFloat      DataType = 20
	TypeDouble     DataType = 25
	TypeDateTime   DataType = 30
	TypeByteArray  DataType = 50
	TypeCharArray  DataType = 55
	TypeBigInteger DataType = 65
	TypeBigDecimal DataType = 70
	TypeMap        DataType = 100
	TypeTuple      DataType = 110
	TypeBag        DataType = 120
)

var typeNames = map[DataType]string{
	TypeUnknown:    "unknown",
	TypeNull:       "NULL",
	TypeBoolean:    "boolean",
	TypeByte:       "byte",
	TypeInt:        "int",
	TypeLong:       "long",
	TypeFloat:      "float",
	TypeDouble:     "double",
	TypeDateTime:   "datetime",
	TypeByteArray:  "bytearray",
	TypeCharArray:  "chararray",
	TypeBigInteger: "biginteger",
	TypeBigDecimal: "bigdecimal",
	TypeMap:        "map",
	TypeTuple:      "tuple",
	TypeBag:        "bag",
}

// FindTypeName returns the host name of a type tag, or "Unknown" if the
// tag isn't one the host defines.
func FindTypeName(t DataType) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

func (t DataType) String() string {
	return FindTypeName(t)
}

// FindType returns the type tag a host would assign to a Go value.
func FindType(v any) DataType {
	switch v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case int8, uint8:
		return TypeByte
	case int32:
		return TypeInt
	case int64:
		return TypeLong
	case float32:
		return TypeFloat
	case float64:
		return TypeDouble
	case time.Time:
		return TypeDateTime
	case []byte:
		return TypeByteArray
	case string:
		return TypeCharArray
	case map[string]any:
		return TypeMap
	case Tuple:
		return TypeTuple
	case []Tuple:
		return TypeBag
	default:
		return TypeUnknown
	}
}
