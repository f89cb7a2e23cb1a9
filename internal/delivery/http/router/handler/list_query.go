package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"quickbite/internal/domain/repository"
)

// parseListOptions reads the shared pagination and sorting query parameters.
// Values are clamped later by ListOptions.Normalize.
func parseListOptions(c echo.Context) repository.ListOptions {
	opts := repository.ListOptions{
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: repository.SortOrder(c.QueryParam("sort_order")),
	}

	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		opts.Offset = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		opts.Limit = v
	}

	return opts
}
