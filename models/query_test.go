package models

import (
	"net/http/httptest"
	"testing"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    ListParams
		wantErr bool
	}{
		{
			name: "defaults",
			url:  "/records",
			want: ListParams{Page: 1, Limit: 50},
		},
		{
			name: "explicit pagination",
			url:  "/records?page=3&limit=20",
			want: ListParams{Page: 3, Limit: 20},
		},
		{
			name: "filters",
			url:  "/records?crop_type=wheat&state=Punjab&district=Ludhiana",
			want: ListParams{Page: 1, Limit: 50, CropType: "wheat", State: "Punjab", District: "Ludhiana"},
		},
		{
			name: "limit at maximum",
			url:  "/records?limit=500",
			want: ListParams{Page: 1, Limit: 500},
		},
		{name: "limit above maximum", url: "/records?limit=501", wantErr: true},
		{name: "zero page", url: "/records?page=0", wantErr: true},
		{name: "negative page", url: "/records?page=-2", wantErr: true},
		{name: "non-numeric page", url: "/records?page=two", wantErr: true},
		{name: "non-numeric limit", url: "/records?limit=many", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			got, err := ParseListParams(r)
			if tc.wantErr {
				if err == nil {
					t.Fatal("ParseListParams() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseListParams() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseListParams() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestListParamsOffset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 50, 0},
		{2, 50, 50},
		{4, 25, 75},
	}
	for _, tc := range tests {
		p := ListParams{Page: tc.page, Limit: tc.limit}
		if got := p.Offset(); got != tc.want {
			t.Errorf("Offset(page=%d, limit=%d) = %d, want %d", tc.page, tc.limit, got, tc.want)
		}
	}
}
