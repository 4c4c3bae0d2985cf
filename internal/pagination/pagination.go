package pagination

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit far from integer overflow.
	MaxPage = 1_000_000
)

// Params is the page/limit pair shared by every listing endpoint.
type Params struct {
	Page  int `form:"page,default=1" binding:"min=1,max=1000000"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

func New(page, limit int) Params {
	return Params{Page: page, Limit: limit}
}

// Offset is the number of rows skipped before the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Bind reads page and limit from the query string. Missing values take the
// defaults, malformed or out-of-range values are a validation error.
func Bind(c *gin.Context) (Params, error) {
	var p Params
	if err := c.ShouldBindQuery(&p); err != nil {
		return Params{}, validators.Translate(err)
	}
	return p, nil
}

// Page is the listing response envelope.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func NewPage[T any](items []T, p Params, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Data:  items,
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
	}
}

// Map converts the items of a page while keeping its metadata.
func Map[T, U any](pg Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(pg.Data))
	for _, item := range pg.Data {
		out = append(out, fn(item))
	}
	return Page[U]{Data: out, Page: pg.Page, Limit: pg.Limit, Total: pg.Total}
}
