// Package impl contains the implementation of the application's business logic.
package impl

import (
	"pharmacy/config"
	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"

	"github.com/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// moneyScale is the number of decimal places stored for amounts.
	moneyScale = 2
)

// errorMapping pairs a repository sentinel with the domain error callers should see.
type errorMapping struct {
	from error
	to   *domainerrors.BaseError
}

func mapping(from error, to *domainerrors.BaseError) errorMapping {
	return errorMapping{from: from, to: to}
}

// mapRepoError translates known repository errors and wraps everything else.
func mapRepoError(err error, message string, mappings ...errorMapping) error {
	for _, m := range mappings {
		if errors.Is(err, m.from) {
			return m.to.WrapMessage(message)
		}
	}

	return errors.Wrap(err, message)
}

// normalizePage applies the configured page size bounds.
func normalizePage(cfg *config.Config, page entity.Page) entity.Page {
	defaultSize, maxSize := defaultPageSize, maxPageSize
	if cfg != nil && cfg.Pagination != nil {
		if cfg.Pagination.DefaultSize > 0 {
			defaultSize = cfg.Pagination.DefaultSize
		}
		if cfg.Pagination.MaxSize > 0 {
			maxSize = cfg.Pagination.MaxSize
		}
	}

	return page.Normalize(defaultSize, maxSize)
}

// validateVariant reports entity rule violations as ErrInvalidVariant.
func validateVariant(variant *entity.ProductVariant) error {
	if err := variant.Validate(); err != nil {
		return domainerrors.ErrInvalidVariant.WithDetails(err.Error())
	}

	return nil
}
