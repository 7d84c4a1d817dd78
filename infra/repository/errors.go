package repository

import (
	"errors"
	"fmt"

	"github.com/neobank/backoffice/pkg/domain"
	"gorm.io/gorm"
)

// mapGormError converts gorm errors into domain errors so infrastructure
// concerns stay in this layer. notFound names the domain error that a missing
// record means in the calling context; anything else becomes an
// infrastructure failure.
func mapGormError(err, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrClientAlreadyExists
	}
	return fmt.Errorf("%w: %v", domain.ErrInfrastructure, err)
}
