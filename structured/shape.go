package structured

import (
	"encoding"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// FieldNames returns the structured field names of struct type t in
// declaration order. Fields tagged "-" and unexported fields are skipped.
func FieldNames(t reflect.Type) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		if name, ok := fieldName(t.Field(i)); ok {
			names = append(names, name)
		}
	}
	return names
}

func fieldName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	}
	return name, true
}

// isLeaf reports whether values of t are written as a single scalar.
func isLeaf(t reflect.Type) bool {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
		return false
	}
	return true
}

// checkShape matches a generically decoded document against type t.
func checkShape(doc any, t reflect.Type, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	// null stands for an empty list only; anything else has no zero default.
	if doc == nil && (isLeaf(t) || t.Kind() != reflect.Slice) {
		return fmt.Errorf("%w: %s: null %s", ErrShape, path, t)
	}
	if isLeaf(t) {
		switch doc.(type) {
		case map[string]any, map[any]any, []any:
			return fmt.Errorf("%w: %s: want a scalar, got %T", ErrShape, path, doc)
		}
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		m, ok := doc.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s: want an object, got %T", ErrShape, path, doc)
		}
		return checkStruct(m, t, path)
	case reflect.Slice:
		if doc == nil {
			return nil
		}
		list, ok := doc.([]any)
		if !ok {
			return fmt.Errorf("%w: %s: want a list, got %T", ErrShape, path, doc)
		}
		return checkElems(list, t.Elem(), path)
	case reflect.Array:
		list, ok := doc.([]any)
		if !ok {
			return fmt.Errorf("%w: %s: want a list, got %T", ErrShape, path, doc)
		}
		if len(list) != t.Len() {
			return fmt.Errorf("%w: %s: %d elements, want %d", ErrShape, path, len(list), t.Len())
		}
		return checkElems(list, t.Elem(), path)
	}
	return fmt.Errorf("%w: %s: unsupported type %s", ErrShape, path, t)
}

func checkStruct(m map[string]any, t reflect.Type, path string) error {
	known := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		known[name] = struct{}{}
		v, present := m[name]
		if !present {
			return fmt.Errorf("%w: %s.%s", ErrMissingField, path, name)
		}
		if err := checkShape(v, f.Type, path+"."+name); err != nil {
			return err
		}
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if _, ok := known[k]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, path, k)
		}
	}
	return nil
}

func checkElems(list []any, elem reflect.Type, path string) error {
	for i, v := range list {
		if err := checkShape(v, elem, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
