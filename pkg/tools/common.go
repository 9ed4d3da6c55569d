/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package tools

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// CamelToSnake converts a camel case string to a snake case string
func CamelToSnake(name string) string {
	var result strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteByte('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}

// PrintStructKeyVal prints the key-value pairs of a struct into a
// human-readable format
func PrintStructKeyVal(w io.Writer, structure interface{}) {
	val := reflect.ValueOf(structure)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		name := CamelToSnake(typ.Field(i).Name)
		switch field.Kind() {
		case reflect.String:
			fmt.Fprintf(w, "  - %s: %s\n", name, field.String())
		case reflect.Slice:
			fmt.Fprintf(w, "  - %s:\n", name)
			for j := 0; j < field.Len(); j++ {
				fmt.Fprintf(w, "    - %v\n", field.Index(j).Interface())
			}
		case reflect.Bool:
			fmt.Fprintf(w, "  - %s: %v\n", name, field.Bool())
		default:
			fmt.Fprintf(w, "  - %s: %v\n", name, field.Interface())
		}
	}
}
