package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// StructToCsvHeader takes a struct type and returns a slice of strings representing the CSV header.
// It uses the `csv` tag on struct fields to determine the header name.
// If a field doesn't have a `csv` tag, the field name is used.
func StructToCsvHeader(t reflect.Type) []string {
	var headers []string
	for i := 0; i < t.NumField(); i++ {
		headers = append(headers, headerName(t.Field(i)))
	}
	return headers
}

// ColumnIndex maps each known header name to its column in a CSV header row.
// Matching ignores case and surrounding spaces; unknown columns are ignored
// and the first occurrence of a duplicated column wins.
func ColumnIndex(headerRow []string, known []string) map[string]int {
	columns := make(map[string]int, len(known))
	for i, col := range headerRow {
		name := strings.ToLower(strings.TrimSpace(col))
		if indexOf(known, name) < 0 {
			continue
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

// WriteToCsvFile writes the given headers and data to a CSV file at the specified filePath.
// For slices, it joins the elements using a semicolon (;) to handle multi-value fields.
func WriteToCsvFile[T any](filePath string, headers []string, data []T) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	// Write the headers
	if err := writer.Write(headers); err != nil {
		return err
	}

	// Write the data rows
	for _, item := range data {
		row, err := structToRow(item, headers)
		if err != nil {
			return err
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}

func structToRow(item any, headers []string) ([]string, error) {
	row := make([]string, len(headers))
	v := reflect.ValueOf(item)

	// If item is a pointer, get the value it points to
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("data must be a slice of structs")
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		idx := indexOf(headers, headerName(t.Field(i)))
		if idx < 0 {
			continue // Skip fields not in the headers
		}

		fieldValue := v.Field(i)
		if fieldValue.Kind() == reflect.Slice {
			var sliceValues []string
			for j := 0; j < fieldValue.Len(); j++ {
				sliceValues = append(sliceValues, fmt.Sprintf("%v", fieldValue.Index(j).Interface()))
			}
			row[idx] = strings.Join(sliceValues, ";")
		} else {
			row[idx] = fmt.Sprintf("%v", fieldValue.Interface())
		}
	}
	return row, nil
}

func headerName(field reflect.StructField) string {
	if tag := field.Tag.Get("csv"); tag != "" {
		return tag
	}
	return field.Name
}

// indexOf returns the index of a string in a slice or -1 if not found
func indexOf(slice []string, item string) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
