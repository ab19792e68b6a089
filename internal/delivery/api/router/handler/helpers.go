package handler

import (
	"net/http"
	"time"

	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PageQuery is the pagination part of listing requests.
type PageQuery struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

func (q PageQuery) toPage() entity.Page {
	return entity.Page{Number: q.Page, Size: q.PageSize}
}

// HealthCheck reports that the API process is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// paramUUID parses a path parameter as a uuid.
func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid %s", name)
	}

	return id, nil
}

// parseDateRange reads the optional from/to query parameters as RFC 3339 or YYYY-MM-DD.
func parseDateRange(c echo.Context) (from, to *time.Time, err error) {
	if from, err = parseTimeQuery(c.QueryParam("from")); err != nil {
		return nil, nil, errors.Wrap(err, "invalid from")
	}
	if to, err = parseTimeQuery(c.QueryParam("to")); err != nil {
		return nil, nil, errors.Wrap(err, "invalid to")
	}

	return from, to, nil
}

func parseTimeQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &t, nil
}
