package viewcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwaldrip/ledgerboard/internal/viewcache"
)

func TestCache_PutGet(t *testing.T) {
	c := viewcache.New()

	_, ok := c.Get("/dashboard/invoices", "")
	assert.False(t, ok)

	c.Put("/dashboard/invoices", "", []byte("page1"))
	c.Put("/dashboard/invoices", "query=acme", []byte("filtered"))

	got, ok := c.Get("/dashboard/invoices", "")
	assert.True(t, ok)
	assert.Equal(t, []byte("page1"), got)

	got, ok = c.Get("/dashboard/invoices", "query=acme")
	assert.True(t, ok)
	assert.Equal(t, []byte("filtered"), got)
}

func TestCache_InvalidateDropsAllVariants(t *testing.T) {
	c := viewcache.New()

	c.Put("/dashboard/invoices", "", []byte("page1"))
	c.Put("/dashboard/invoices", "page=2", []byte("page2"))
	c.Put("/dashboard", "", []byte("summary"))

	c.Invalidate("/dashboard/invoices")

	_, ok := c.Get("/dashboard/invoices", "")
	assert.False(t, ok)

	_, ok = c.Get("/dashboard/invoices", "page=2")
	assert.False(t, ok)

	// Other paths are untouched.
	got, ok := c.Get("/dashboard", "")
	assert.True(t, ok)
	assert.Equal(t, []byte("summary"), got)
}

func TestCache_InvalidateIsIdempotent(t *testing.T) {
	c := viewcache.New()

	c.Invalidate("/dashboard/invoices")
	c.Invalidate("/dashboard/invoices")

	c.Put("/dashboard/invoices", "", []byte("fresh"))
	c.Invalidate("/dashboard/invoices")
	c.Invalidate("/dashboard/invoices")

	_, ok := c.Get("/dashboard/invoices", "")
	assert.False(t, ok)
}
