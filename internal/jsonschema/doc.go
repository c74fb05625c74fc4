// Package jsonschema generates JSON Schema definitions from Go types via
// reflection. It supports the subset of the standard needed to describe tool
// parameters: objects, primitives, arrays, maps, enums, defaults, and
// required fields, driven by json and jsonschema struct tags.
package jsonschema
