package helpers

import (
	"testing"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset int
		wantLimit  int
	}{
		{"first page", 1, 20, 0, 20},
		{"third page", 3, 10, 20, 10},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -5, 10, 0, 10},
		{"zero size uses default", 2, 0, DefaultPageSize, DefaultPageSize},
		{"oversized page size uses default", 1, MaxPageSize + 1, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name            string
		totalItems      int64
		page            int
		size            int
		wantCurrentPage int
		wantTotalPages  int
	}{
		{"exact pages", 40, 1, 20, 1, 2},
		{"partial last page", 45, 3, 20, 3, 3},
		{"empty result set", 0, 1, 20, 1, 1},
		{"page beyond range clamps", 10, 5, 20, 1, 1},
		{"single item", 1, 1, 20, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.totalItems, tt.page, tt.size)
			if info.CurrentPage != tt.wantCurrentPage {
				t.Errorf("CurrentPage = %d, want %d", info.CurrentPage, tt.wantCurrentPage)
			}
			if info.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantTotalPages)
			}
			if info.TotalItems != tt.totalItems {
				t.Errorf("TotalItems = %d, want %d", info.TotalItems, tt.totalItems)
			}
		})
	}
}
