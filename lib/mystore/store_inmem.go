package mystore

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"
)

type InMemoryStore[T any] struct {
	sync.Mutex
	Items map[string]T
}

func NewInMemoryStore[T any](c context.Context) (*InMemoryStore[T], func(), error) {
	return &InMemoryStore[T]{
		Items: make(map[string]T),
	}, func() {}, nil
}

func (s *InMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	// Start transaction
	s.Lock()
	defer s.Unlock()

	ctx := context.WithValue(c, ctxTransactionKey{}, true)

	// Within this block everything is transactional
	return f(ctx)
}

func (s *InMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	s.Items[uid] = value

	return nil
}

func (s *InMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	result, exists := s.Items[uid]

	return result, exists, nil
}

func (s *InMemoryStore[T]) List(c context.Context) ([]T, error) {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	result := make([]T, 0, len(s.Items))
	for _, v := range s.Items {
		result = append(result, v)
	}

	return result, nil
}

// Query only evaluates equality filters; other comparators are ignored in memory
func (s *InMemoryStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	all, err := s.List(c)
	if err != nil {
		return nil, err
	}

	result := []T{}
	for _, item := range all {
		if matches(item, filters) {
			result = append(result, item)
		}
	}

	if orderByField != "" {
		sort.SliceStable(result, func(i, j int) bool {
			return less(fieldOf(result[i], orderByField), fieldOf(result[j], orderByField))
		})
	}

	return result, nil
}

func fieldOf(item any, name string) reflect.Value {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	return v.FieldByName(name)
}

func matches(item any, filters []Filter) bool {
	for _, f := range filters {
		if f.Compare != "=" {
			continue
		}
		fv := fieldOf(item, f.Field)
		if !fv.IsValid() || !fv.CanInterface() || !reflect.DeepEqual(fv.Interface(), f.Value) {
			return false
		}
	}
	return true
}

func less(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() || !a.CanInterface() || !b.CanInterface() {
		return false
	}

	switch a.Kind() {
	case reflect.String:
		return a.String() < b.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	}

	at, ok := a.Interface().(time.Time)
	if !ok {
		return false
	}
	bt, ok := b.Interface().(time.Time)
	if !ok {
		return false
	}
	return at.Before(bt)
}
