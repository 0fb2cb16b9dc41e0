package catalog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/draft"
)

// mapError translates core errors to HTTP statuses. Validation errors are the
// caller's fault; not-found addresses a record the feed no longer has;
// conflict guards the single-commit-in-flight rule; anything else is a
// collaborator failure surfaced with its message, retriable manually.
func mapError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrInquiryNotFound),
		errors.Is(err, domain.ErrBlockNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrMissingMainImage),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrUnknownWebsite),
		errors.Is(err, domain.ErrInvalidClassification),
		errors.Is(err, domain.ErrDuplicateBlockID):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, draft.ErrCommitInFlight),
		errors.Is(err, draft.ErrDraftClosed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	default:
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
}
