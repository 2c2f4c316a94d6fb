package s3props

import (
	"fmt"
	"reflect"
)

// Resolve rewrites, in place, every placeholder found in the string values
// reachable from defs. Each definition must be a non-nil pointer or a map.
// Unexported fields are left untouched, except that the exported fields of
// embedded structs are resolved. Shared or self-referencing pointers, maps and
// slices are visited once.
func (r *Resolver) Resolve(defs ...any) error {
	for i, def := range defs {
		v := reflect.ValueOf(def)
		switch {
		case v.Kind() == reflect.Map && !v.IsNil():
		case v.Kind() == reflect.Ptr && !v.IsNil():
		default:
			return fmt.Errorf("%w: definition %d must be a non-nil pointer or map, got %T", ErrInvalidArgument, i, def)
		}
		w := walker{resolver: r, seen: make(map[visit]struct{})}
		if err := w.walk(v, reflect.Indirect(v).Type().Name()); err != nil {
			return err
		}
	}
	return nil
}

type walker struct {
	resolver *Resolver
	seen     map[visit]struct{}
}

// visit identifies a reference-typed value. A slice is keyed by length too so
// that sub-slices sharing a backing array are still walked.
type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

// enter reports whether v is seen for the first time.
func (w *walker) enter(v reflect.Value, n int) bool {
	k := visit{ptr: v.Pointer(), typ: v.Type(), n: n}
	if _, ok := w.seen[k]; ok {
		return false
	}
	w.seen[k] = struct{}{}
	return true
}

func (w *walker) walk(v reflect.Value, path string) error {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		if !w.enter(v, 0) {
			return nil
		}
		return w.walk(v.Elem(), path)

	case reflect.Interface:
		if v.IsNil() || !v.CanSet() {
			return nil
		}
		// Interface contents are not addressable: copy, walk, set back.
		inner := v.Elem()
		cp := reflect.New(inner.Type()).Elem()
		cp.Set(inner)
		if err := w.walk(cp, path); err != nil {
			return err
		}
		v.Set(cp)

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		resolved, err := w.resolver.ResolveString(v.String())
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		v.SetString(resolved)

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f, sf := v.Field(i), t.Field(i)
			if !f.CanSet() && !sf.Anonymous {
				continue
			}
			if err := w.walk(f, join(path, sf.Name)); err != nil {
				return err
			}
		}

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		if v.Kind() == reflect.Slice && v.Len() > 0 && !w.enter(v, v.Len()) {
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if err := w.walk(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}

	case reflect.Map:
		if v.IsNil() || !w.enter(v, 0) {
			return nil
		}
		elemType := v.Type().Elem()
		for _, key := range v.MapKeys() {
			// Map values are not addressable: copy, walk, set back.
			cp := reflect.New(elemType).Elem()
			cp.Set(v.MapIndex(key))
			if err := w.walk(cp, fmt.Sprintf("%s[%v]", path, key.Interface())); err != nil {
				return err
			}
			v.SetMapIndex(key, cp)
		}
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
