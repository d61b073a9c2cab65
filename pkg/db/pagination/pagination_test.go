package pagination

import "testing"

func TestNormalizeClamps(t *testing.T) {
	cases := []struct {
		name     string
		in       Page
		page     int
		pageSize int
	}{
		{"zero value", Page{}, 1, DefaultPageSize},
		{"negative page", Page{Page: -3, PageSize: 10}, 1, 10},
		{"oversized page size", Page{Page: 2, PageSize: 500}, 2, 100},
		{"valid", Page{Page: 3, PageSize: 20}, 3, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.Page != tc.page || got.PageSize != tc.pageSize {
				t.Fatalf("got %+v, want page=%d size=%d", got, tc.page, tc.pageSize)
			}
		})
	}
}

func TestOffsetAndLimit(t *testing.T) {
	p := Page{Page: 3, PageSize: 20}
	if p.Offset() != 40 {
		t.Fatalf("offset %d", p.Offset())
	}
	if p.Limit() != 20 {
		t.Fatalf("limit %d", p.Limit())
	}
}

func TestBuildPageInfo(t *testing.T) {
	info := BuildPageInfo(Page{Page: 1, PageSize: 20}, 25)
	if !info.HasMore {
		t.Fatal("expected more pages")
	}
	info = BuildPageInfo(Page{Page: 2, PageSize: 20}, 25)
	if info.HasMore {
		t.Fatal("expected last page")
	}
}
