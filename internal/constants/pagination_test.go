package constants

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func pageableContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/cars?"+rawQuery, nil)
	return c
}

func TestParsePageable(t *testing.T) {
	tests := []struct {
		name      string
		rawQuery  string
		wantPage  int
		wantSize  int
		wantField string
		wantDesc  bool
	}{
		{
			name:      "Defaults",
			rawQuery:  "",
			wantPage:  0,
			wantSize:  20,
			wantField: "id",
		},
		{
			name:      "Explicit values",
			rawQuery:  "page=2&size=50&sort=price&order=desc",
			wantPage:  2,
			wantSize:  50,
			wantField: "price",
			wantDesc:  true,
		},
		{
			name:      "Negative page clamps to zero",
			rawQuery:  "page=-4",
			wantPage:  0,
			wantSize:  20,
			wantField: "id",
		},
		{
			name:      "Oversized page clamps to maximum",
			rawQuery:  "size=5000",
			wantPage:  0,
			wantSize:  100,
			wantField: "id",
		},
		{
			name:      "Non-whitelisted sort falls back",
			rawQuery:  "sort=password",
			wantPage:  0,
			wantSize:  20,
			wantField: "id",
		},
		{
			name:      "Order is case-insensitive",
			rawQuery:  "sort=sales&order=DESC",
			wantPage:  0,
			wantSize:  20,
			wantField: "sales",
			wantDesc:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePageable(pageableContext(t, tt.rawQuery))

			if got.Page != tt.wantPage {
				t.Errorf("Expected page %d, got %d", tt.wantPage, got.Page)
			}
			if got.Size != tt.wantSize {
				t.Errorf("Expected size %d, got %d", tt.wantSize, got.Size)
			}
			if got.Sort.Field != tt.wantField {
				t.Errorf("Expected sort field %q, got %q", tt.wantField, got.Sort.Field)
			}
			if got.Sort.Desc != tt.wantDesc {
				t.Errorf("Expected desc=%v, got %v", tt.wantDesc, got.Sort.Desc)
			}
		})
	}
}

func TestBuildLinkHeader_Relations(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		totalPages  int
		wantRels    []string
		forbidsRels []string
	}{
		{
			name:        "First of many",
			page:        0,
			totalPages:  3,
			wantRels:    []string{"next", "last", "first"},
			forbidsRels: []string{"prev"},
		},
		{
			name:       "Middle page",
			page:       1,
			totalPages: 3,
			wantRels:   []string{"next", "prev", "last", "first"},
		},
		{
			name:        "Last page",
			page:        2,
			totalPages:  3,
			wantRels:    []string{"prev", "last", "first"},
			forbidsRels: []string{"next"},
		},
		{
			name:        "Empty result",
			page:        0,
			totalPages:  0,
			wantRels:    []string{"last", "first"},
			forbidsRels: []string{"next", "prev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := BuildLinkHeader("/api/v1/cars", url.Values{}, tt.page, 20, tt.totalPages)

			for _, rel := range tt.wantRels {
				if !strings.Contains(header, `rel="`+rel+`"`) {
					t.Errorf("Expected relation %q in %q", rel, header)
				}
			}
			for _, rel := range tt.forbidsRels {
				if strings.Contains(header, `rel="`+rel+`"`) {
					t.Errorf("Unexpected relation %q in %q", rel, header)
				}
			}
		})
	}
}

func TestBuildLinkHeader_PreservesFilterParams(t *testing.T) {
	params := url.Values{}
	params.Set("segment", "SUV")
	params.Set("minPrice", "10000")
	params.Set("page", "1")
	params.Set("size", "10")

	header := BuildLinkHeader("/api/v1/cars/search", params, 1, 10, 3)

	for _, link := range strings.Split(header, ",") {
		if !strings.Contains(link, "segment=SUV") {
			t.Errorf("Expected segment filter preserved in %q", link)
		}
		if !strings.Contains(link, "minPrice=10000") {
			t.Errorf("Expected minPrice filter preserved in %q", link)
		}
	}

	if !strings.Contains(header, "page=2") {
		t.Errorf("Expected next page target in %q", header)
	}
	if !strings.Contains(header, "page=0") {
		t.Errorf("Expected prev/first page target in %q", header)
	}
}
