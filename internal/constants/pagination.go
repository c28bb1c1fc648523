package constants

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/motorlane/carstock/internal/query"
)

// Pagination query parameters. Pages are 0-based on the wire.
const (
	QueryParamPage  = "page"
	QueryParamSize  = "size"
	QueryParamSort  = "sort"
	QueryParamOrder = "order"
)

const (
	DefaultPage  = "0"
	DefaultSize  = "20"
	DefaultSort  = "id"
	DefaultOrder = "asc"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Pagination response headers, in the shape the original web client expects.
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderTotalPages = "X-Total-Pages"
	HeaderLink       = "Link"
)

// sortableFields is the whitelist of car columns a caller may sort by.
// Anything else silently falls back to the default sort.
var sortableFields = map[string]bool{
	"id":         true,
	"model_name": true,
	"price":      true,
	"sales":      true,
	"segment":    true,
}

// ParsePageable reads pagination query parameters into a normalized
// query.Pageable.
func ParsePageable(c *gin.Context) query.Pageable {
	pageStr := c.DefaultQuery(QueryParamPage, DefaultPage)
	sizeStr := c.DefaultQuery(QueryParamSize, DefaultSize)
	sort := c.DefaultQuery(QueryParamSort, DefaultSort)
	order := c.DefaultQuery(QueryParamOrder, DefaultOrder)

	page, _ := strconv.Atoi(pageStr)
	size, _ := strconv.Atoi(sizeStr)

	if !sortableFields[sort] {
		sort = DefaultSort
	}

	return query.Pageable{
		Page: page,
		Size: size,
		Sort: query.Sort{
			Field: sort,
			Desc:  strings.EqualFold(order, OrderDesc),
		},
	}.Normalize()
}

// SetPageHeaders writes pagination metadata headers for one result page:
// the filtered total count, the page count and an RFC 5988 Link header
// with first/prev/next/last relations.
func SetPageHeaders[T any](c *gin.Context, page *query.Page[T], basePath string) {
	c.Header(HeaderTotalCount, strconv.FormatInt(page.TotalCount, 10))
	c.Header(HeaderTotalPages, strconv.Itoa(page.TotalPages))
	c.Header(HeaderLink, BuildLinkHeader(basePath, c.Request.URL.Query(), page.Page, page.Size, page.TotalPages))
}

// BuildLinkHeader assembles the Link navigation header, preserving every
// non-pagination query parameter of the original request.
func BuildLinkHeader(basePath string, params url.Values, page, size, totalPages int) string {
	var links []string

	add := func(rel string, target int) {
		q := url.Values{}
		for key, values := range params {
			if key == QueryParamPage || key == QueryParamSize {
				continue
			}
			for _, v := range values {
				q.Add(key, v)
			}
		}
		q.Set(QueryParamPage, strconv.Itoa(target))
		q.Set(QueryParamSize, strconv.Itoa(size))
		links = append(links, fmt.Sprintf("<%s?%s>; rel=%q", basePath, q.Encode(), rel))
	}

	lastPage := totalPages - 1
	if lastPage < 0 {
		lastPage = 0
	}

	if page < lastPage {
		add("next", page+1)
	}
	if page > 0 {
		add("prev", page-1)
	}
	add("last", lastPage)
	add("first", 0)

	return strings.Join(links, ",")
}
