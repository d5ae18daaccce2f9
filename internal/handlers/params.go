package handlers

import (
	"net/http"
	"strconv"

	"hhdonations/internal/common"
	"hhdonations/internal/query"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the :id path segment.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID format")
	}
	return id, nil
}

// listOptions assembles the shared list parameters from the query
// string. Each name in exactFields or matchFields becomes a filter when
// the corresponding query param is present; exact fields compare equal,
// match fields match substrings.
func listOptions(c echo.Context, exactFields, matchFields []string) query.Options {
	opts := query.Options{}

	for _, field := range exactFields {
		if v := c.QueryParam(field); v != "" {
			opts.Filters = append(opts.Filters, query.Filter{Field: field, Value: v, Exact: true})
		}
	}
	for _, field := range matchFields {
		if v := c.QueryParam(field); v != "" {
			opts.Filters = append(opts.Filters, query.Filter{Field: field, Value: v})
		}
	}

	if sortField := c.QueryParam("sort"); sortField != "" {
		direction := query.Asc
		if c.QueryParam("sort_dir") == string(query.Desc) {
			direction = query.Desc
		}
		opts.Sort = &query.Sort{Field: sortField, Direction: direction}
	}

	if pageParam := c.QueryParam("page"); pageParam != "" {
		if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
			opts.Page = p
		}
	}
	if sizeParam := c.QueryParam("page_size"); sizeParam != "" {
		if s, err := strconv.Atoi(sizeParam); err == nil && s > 0 {
			opts.PageSize = s
		}
	}

	return opts
}

// serviceError renders a service failure as the standard error
// envelope with the status its kind maps to.
func serviceError(c echo.Context, err error) error {
	appErr := common.AsError(err)
	return c.JSON(appErr.HTTPStatus(), common.CreateErrorResponse(string(appErr.Kind), appErr.Message, appErr.Field))
}
