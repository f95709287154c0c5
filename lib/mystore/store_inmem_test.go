package mystore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type Shoe struct {
	UID       string
	Title     string
	InStock   bool
	CreatedAt time.Time
}

var (
	now   = time.Date(2023, time.February, 27, 23, 58, 59, 0, time.UTC)
	shoe1 = Shoe{UID: "1", Title: "Tênis de Caminhada Leve Confortável", InStock: true, CreatedAt: now.Add(time.Minute)}
	shoe2 = Shoe{UID: "2", Title: "Tênis VR Caminhada Confortável Detalhes Couro Masculino", InStock: false, CreatedAt: now}
	shoe3 = Shoe{UID: "3", Title: "Tênis Adidas Duramo Lite 2.0", InStock: true, CreatedAt: now.Add(-time.Minute)}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	ps, cleanup, err := NewInMemoryStore[Shoe](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ps.Get(c, shoe1.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = ps.Put(c, shoe1.UID, shoe1)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		s, found, err := ps.Get(c, shoe1.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, shoe1, s)
	})

	t.Run("List", func(t *testing.T) {
		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []Shoe{shoe1}, all)
	})

	t.Run("Query with filter and order", func(t *testing.T) {
		assert.NoError(t, ps.Put(c, shoe2.UID, shoe2))
		assert.NoError(t, ps.Put(c, shoe3.UID, shoe3))

		inStock, err := ps.Query(c, []Filter{{Field: "InStock", Compare: "=", Value: true}}, "CreatedAt")
		assert.NoError(t, err)
		assert.Equal(t, []Shoe{shoe3, shoe1}, inStock)
	})
}

func TestTransaction(t *testing.T) {
	c := context.TODO()
	ps, cleanup, err := NewInMemoryStore[Shoe](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Commit", func(t *testing.T) {
		err := ps.RunInTransaction(c, func(c context.Context) error {
			_, found, err := ps.Get(c, shoe1.UID)
			assert.NoError(t, err)
			assert.False(t, found)

			return ps.Put(c, shoe1.UID, shoe1)
		})
		assert.NoError(t, err)

		_, found, err := ps.Get(c, shoe1.UID)
		assert.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("Error is returned", func(t *testing.T) {
		err := ps.RunInTransaction(c, func(c context.Context) error {
			return fmt.Errorf("failed")
		})
		assert.EqualError(t, err, "failed")
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "Shoe", kindOf[Shoe]())
}
