package udf

import (
	"strings"

	"github.com/Invicton-Labs/go-stackerr"
)

// FieldSchema describes a single field of a tuple. An empty Alias
// means the field is unnamed.
type FieldSchema struct {
	Alias string
	Type  DataType
}

func (fs FieldSchema) String() string {
	if fs.Alias == "" {
		return FindTypeName(fs.Type)
	}
	return fs.Alias + ": " + FindTypeName(fs.Type)
}

// Schema is the ordered set of field descriptions the host uses to
// type-check a function call before running it.
type Schema struct {
	Fields []FieldSchema
}

func NewSchema(fields ...FieldSchema) Schema {
	return Schema{
		Fields: fields,
	}
}

func (s Schema) Size() int {
	return len(s.Fields)
}

func (s Schema) Field(index int) (FieldSchema, stackerr.Error) {
	if index < 0 || index >= len(s.Fields) {
		return FieldSchema{}, stackerr.Errorf("Field index %d out of range for schema with %d fields", index, len(s.Fields))
	}
	return s.Fields[index], nil
}

// String renders the schema the way the host prints it, e.g. `{a: int,b: int}`.
func (s Schema) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
