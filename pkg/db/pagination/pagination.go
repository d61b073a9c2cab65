package pagination

// Page describes fixed-size page navigation. The admin catalog pages at a
// fixed size; page numbers are 1-based.
type Page struct {
	Page     int `form:"page,default=1" validate:"gte=1"`
	PageSize int `form:"page_size,default=20" validate:"gte=1,lte=100"`
}

type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
}

const DefaultPageSize = 20

// Normalize clamps the request into a usable page.
func (p Page) Normalize() Page {
	out := p
	if out.Page < 1 {
		out.Page = 1
	}
	if out.PageSize < 1 {
		out.PageSize = DefaultPageSize
	}
	if out.PageSize > 100 {
		out.PageSize = 100
	}
	return out
}

func (p Page) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

func (p Page) Limit() int {
	return p.Normalize().PageSize
}

// BuildPageInfo derives paging metadata from a total row count.
func BuildPageInfo(p Page, total int64) PageInfo {
	n := p.Normalize()
	return PageInfo{
		Page:       n.Page,
		PageSize:   n.PageSize,
		TotalItems: total,
		HasMore:    int64(n.Page*n.PageSize) < total,
	}
}
