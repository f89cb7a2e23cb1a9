package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListOptions_Normalize(t *testing.T) {
	opts := ListOptions{Offset: -5, Limit: 0}.Normalize()
	assert.Equal(t, 0, opts.Offset)
	assert.Equal(t, DefaultLimit, opts.Limit)
	assert.Equal(t, SortAsc, opts.SortOrder)

	opts = ListOptions{Limit: 5000}.Normalize()
	assert.Equal(t, MaxLimit, opts.Limit)

	opts = ListOptions{Limit: 25, SortOrder: "DESC"}.Normalize()
	assert.Equal(t, 25, opts.Limit)
	assert.Equal(t, SortDesc, opts.SortOrder)

	opts = ListOptions{SortOrder: "sideways"}.Normalize()
	assert.Equal(t, SortAsc, opts.SortOrder)
}

func TestListOptions_SortColumn(t *testing.T) {
	allowed := []string{"name", "created_at", "price_cents"}

	opts := ListOptions{SortBy: "price_cents"}
	assert.Equal(t, "price_cents", opts.SortColumn(allowed, "created_at"))

	opts = ListOptions{SortBy: "NAME"}
	assert.Equal(t, "name", opts.SortColumn(allowed, "created_at"), "matching is case-insensitive")

	opts = ListOptions{SortBy: "password_hash"}
	assert.Equal(t, "created_at", opts.SortColumn(allowed, "created_at"), "unknown columns fall back")

	opts = ListOptions{}
	assert.Equal(t, "created_at", opts.SortColumn(allowed, "created_at"))
}
