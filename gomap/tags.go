package gomap

import (
	"reflect"
	"strings"
)

// fieldInfo is the mapping metadata of one struct field.
type fieldInfo struct {
	index int
	name  string
	omit  bool
}

// structFields extracts the mappable fields of a struct type.  The ron
// tag renames a field, "-" omits it, and unexported fields are skipped.
func structFields(t reflect.Type) []fieldInfo {
	fields := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		info := fieldInfo{index: i, name: f.Name}
		if tag, ok := f.Tag.Lookup("ron"); ok {
			name, _, _ := strings.Cut(tag, ",")
			switch name {
			case "-":
				info.omit = true
			case "":
			default:
				info.name = name
			}
		}
		if !info.omit {
			fields = append(fields, info)
		}
	}
	return fields
}
