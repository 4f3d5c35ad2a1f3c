package listing

import (
	"errors"
	"fmt"
)

var ErrUnknownField = errors.New("listing: unknown field")

// Field exposes one attribute of T to the engine. Values returns every text
// value of the field (list fields return one element per entry). Number, when
// set, makes the field sort numerically.
type Field[T any] struct {
	Name       string
	Values     func(T) []string
	Number     func(T) float64
	Searchable bool
}

// Text adapts a single-valued accessor.
func Text[T any](name string, searchable bool, get func(T) string) Field[T] {
	return Field[T]{
		Name:       name,
		Searchable: searchable,
		Values:     func(v T) []string { return []string{get(v)} },
	}
}

// List adapts a multi-valued accessor.
func List[T any](name string, searchable bool, get func(T) []string) Field[T] {
	return Field[T]{Name: name, Searchable: searchable, Values: get}
}

// Numeric adapts a number; its text form is used for search and filters.
func Numeric[T any](name string, get func(T) float64) Field[T] {
	return Field[T]{
		Name:   name,
		Values: func(v T) []string { return []string{fmt.Sprintf("%g", get(v))} },
		Number: get,
	}
}

type Schema[T any] struct {
	fields map[string]Field[T]
	order  []string
}

func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{fields: make(map[string]Field[T], len(fields))}
	for _, f := range fields {
		if _, dup := s.fields[f.Name]; !dup {
			s.order = append(s.order, f.Name)
		}
		s.fields[f.Name] = f
	}
	return s
}

func (s *Schema[T]) Field(name string) (Field[T], bool) {
	f, ok := s.fields[name]
	return f, ok
}

func (s *Schema[T]) searchable() []Field[T] {
	out := make([]Field[T], 0, len(s.order))
	for _, name := range s.order {
		if f := s.fields[name]; f.Searchable {
			out = append(out, f)
		}
	}
	return out
}

// Check reports the first field name in q the schema does not know.
func (s *Schema[T]) Check(q Query) error {
	if q.Scope != "" && q.Scope != ScopeAll {
		if _, ok := s.fields[q.Scope]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, q.Scope)
		}
	}
	for name := range q.Filters {
		if _, ok := s.fields[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	if q.SortBy != "" {
		if _, ok := s.fields[q.SortBy]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, q.SortBy)
		}
	}
	return nil
}
