package simsrv

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
)

// page holds the 1-based pagination parameters of a list request.
type page struct {
	Number int
	Size   int
}

// parsePage reads page/pageSize from the query string. Absent, non-numeric,
// or non-positive values fall back to (1, defaultSize).
func parsePage(c fiber.Ctx, defaultSize int) page {
	return page{
		Number: queryInt(c, "page", 1),
		Size:   queryInt(c, "pageSize", defaultSize),
	}
}

func queryInt(c fiber.Ctx, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}

// paginate slices items at [(page-1)*size, page*size), clamped to bounds.
func paginate[T any](items []T, p page) []T {
	start := (p.Number - 1) * p.Size
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// totalPages is ceil(total/size).
func totalPages(total, size int) int {
	return (total + size - 1) / size
}
