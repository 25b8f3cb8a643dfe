package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultSize is the page size applied when the client omits `size`.
	DefaultSize = 10
	// MaxSize caps the page size a client can request.
	MaxSize = 100
)

// Params holds pagination parameters extracted from query strings.
// Pages are zero-based, matching the catalog backend contract.
type Params struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// DefaultParams returns the first page with the default size.
func DefaultParams() Params {
	return Params{
		Page: 0,
		Size: DefaultSize,
	}
}

// FromRequest extracts `page` and `size` from an HTTP request.
// Negative or malformed values fall back to defaults; size is capped at MaxSize.
func FromRequest(r *http.Request) Params {
	p := DefaultParams()

	if page := r.URL.Query().Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v >= 0 {
			p.Page = v
		}
	}

	if size := r.URL.Query().Get("size"); size != "" {
		if v, err := strconv.Atoi(size); err == nil && v > 0 {
			if v > MaxSize {
				v = MaxSize
			}
			p.Size = v
		}
	}

	return p
}

// Meta describes one page of a list, as reported by the server that owns the
// data. The server's meta is authoritative; callers never clamp or recompute
// the page locally.
type Meta struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Pages    int `json:"pages"`
	Total    int `json:"total"`
}

// NewMeta computes page metadata for a zero-based page over total items.
func NewMeta(params Params, total int) Meta {
	pages := total / params.Size
	if total%params.Size > 0 {
		pages++
	}

	return Meta{
		Page:     params.Page,
		PageSize: params.Size,
		Pages:    pages,
		Total:    total,
	}
}

// Result is one page of items together with its metadata.
type Result[T any] struct {
	Meta   Meta `json:"meta"`
	Result []T  `json:"result"`
}

// NewResult wraps a page of items with its metadata, normalizing a nil slice
// to an empty one so the JSON result is always an array.
func NewResult[T any](items []T, meta Meta) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Meta:   meta,
		Result: items,
	}
}
