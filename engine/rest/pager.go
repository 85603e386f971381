package rest

import (
	"context"
	"strconv"

	"github.com/patchline/patchline/pkg/logger"
)

// Pager describes how an upstream API paginates its list endpoints.
type Pager struct {
	// PageParam is the query parameter carrying the page number.
	PageParam string
	// SizeParam is the query parameter carrying the page size.
	SizeParam string
	// StartPage is the first page number the API expects.
	StartPage int
	// PageSize is the number of items requested per page.
	PageSize int
}

// maxPages bounds a runaway pagination loop against a misbehaving upstream.
const maxPages = 10000

// AllPages drains a paginated GET endpoint, advancing the page number until
// the upstream returns fewer items than requested.
func (c *Client) AllPages(ctx context.Context, path string, query map[string]string, pager Pager) ([]map[string]any, error) {
	log := logger.FromContext(ctx)
	if pager.PageSize <= 0 {
		pager.PageSize = 100
	}

	out := make([]map[string]any, 0, pager.PageSize)
	page := pager.StartPage
	for i := 0; i < maxPages; i++ {
		q := make(map[string]string, len(query)+2)
		for k, v := range query {
			q[k] = v
		}
		q[pager.PageParam] = strconv.Itoa(page)
		q[pager.SizeParam] = strconv.Itoa(pager.PageSize)

		items, err := c.List(ctx, "GET", path, q, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)

		if len(items) < pager.PageSize {
			break
		}
		page++
	}

	log.Debug("drained paginated endpoint", "path", path, "items", len(out), "pages", page-pager.StartPage+1)
	return out, nil
}
