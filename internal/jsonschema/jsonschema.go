package jsonschema

import (
	"reflect"
	"strconv"
	"strings"
)

// Schema represents the structure of JSON Schema used for defining arguments
// and responses. It follows the JSON Schema standard, supporting the subset
// of types and validation rules needed to describe tool parameters to a
// language model.
type Schema struct {
	// Type specifies the data type (e.g. "object", "array", "string", "number").
	// Empty for fields declared as any, which accept any JSON value.
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the arguments, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties controls whether properties not defined in
	// Properties are allowed
	AdditionalProperties any `json:"additionalProperties,omitempty"`
	// Default value for the parameter
	Default any `json:"default,omitempty"`
	// Enum contains the list of allowed values for the parameter
	Enum []any `json:"enum,omitempty"`
}

// GenerateJSONSchema derives a JSON schema for the type T via reflection.
// Struct fields are named after their json tag (falling back to the Go field
// name) and annotated from the jsonschema tag, e.g.:
//
//	type Input struct {
//	    A  float64 `json:"a"  jsonschema:"description=First operand,required"`
//	    Op string  `json:"op" jsonschema:"description=Operation,enum=add,enum=sub"`
//	}
func GenerateJSONSchema[T any]() *Schema {
	return generateSchema(reflect.TypeOf((*T)(nil)).Elem())
}

func generateSchema(t reflect.Type) *Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return generateSchema(t.Elem())

	case reflect.Struct:
		return generateStructSchema(t)

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: generateSchema(t.Elem())}

	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: generateSchema(t.Elem())}

	case reflect.Interface:
		// A field declared as any carries no type constraint; the model may
		// send whatever JSON value it considers appropriate.
		return &Schema{}

	default:
		return &Schema{Type: "string"}
	}
}

func generateStructSchema(t reflect.Type) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: map[string]*Schema{},
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "-" {
			continue
		}

		fieldSchema := generateSchema(field.Type)
		required := applyFieldTags(fieldSchema, field.Tag.Get("jsonschema"))

		schema.Properties[name] = fieldSchema
		if required {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

// fieldName resolves the JSON property name of a struct field, honouring the
// json tag when present.
func fieldName(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return field.Name
	}

	name := strings.Split(jsonTag, ",")[0]
	if name == "" {
		return field.Name
	}
	return name
}

// applyFieldTags parses the jsonschema struct tag into the field schema and
// reports whether the field is required. Supported directives:
// description=..., enum=..., default=..., required.
func applyFieldTags(schema *Schema, tag string) bool {
	if tag == "" {
		return false
	}

	required := false
	for _, directive := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(directive, "=")
		switch key {
		case "description":
			if hasValue {
				schema.Description = value
			}
		case "enum":
			if hasValue {
				schema.Enum = append(schema.Enum, coerceTagValue(schema.Type, value))
			}
		case "default":
			if hasValue {
				schema.Default = coerceTagValue(schema.Type, value)
			}
		case "required":
			required = true
		}
	}
	return required
}

// coerceTagValue converts a tag literal into the Go value matching the field
// schema type so enums and defaults serialize as the right JSON type.
func coerceTagValue(schemaType, literal string) any {
	switch schemaType {
	case "integer":
		if parsed, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return parsed
		}
	case "number":
		if parsed, err := strconv.ParseFloat(literal, 64); err == nil {
			return parsed
		}
	case "boolean":
		if parsed, err := strconv.ParseBool(literal); err == nil {
			return parsed
		}
	}
	return literal
}
