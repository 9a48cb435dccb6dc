package pagination

const (
	// DefaultPerPage is the standard page size when one is not provided.
	DefaultPerPage = 10
	// MaxPerPage caps how many rows a single page can request.
	MaxPerPage = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page    int
	PerPage int
}

// Meta describes the page that was returned relative to the full result set.
type Meta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

// Normalize clamps page and per_page into their valid ranges.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset returns the row offset for the normalized params.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PerPage
}

// MetaFor builds the pagination envelope for a total row count.
func MetaFor(p Params, total int64) Meta {
	n := p.Normalize()
	pages := int(total) / n.PerPage
	if int(total)%n.PerPage != 0 {
		pages++
	}
	return Meta{
		Page:    n.Page,
		PerPage: n.PerPage,
		Total:   total,
		Pages:   pages,
	}
}
