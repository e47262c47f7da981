// Package csvutil writes slices of tagged structs as CSV files.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// Header derives the CSV header from a struct type's `csv` tags, falling
// back to the field name when a tag is absent.
func Header(t reflect.Type) []string {
	headers := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Name
		if tag := field.Tag.Get("csv"); tag != "" {
			name = tag
		}
		headers = append(headers, name)
	}
	return headers
}

// Write creates filePath and writes one row per struct, columns in field
// order. Slice-valued fields are joined with semicolons.
func Write[T any](filePath string, rows []T) error {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("csvutil: rows must be structs, got %s", t.Kind())
	}
	headers := Header(t)

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(headers); err != nil {
		return err
	}

	for _, item := range rows {
		v := reflect.ValueOf(item)
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}
		record := make([]string, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			fv := v.Field(i)
			if fv.Kind() == reflect.Slice {
				parts := make([]string, fv.Len())
				for j := 0; j < fv.Len(); j++ {
					parts[j] = fmt.Sprintf("%v", fv.Index(j).Interface())
				}
				record[i] = strings.Join(parts, ";")
			} else {
				record[i] = fmt.Sprintf("%v", fv.Interface())
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
