package implementation

import (
	"errors"

	"solar-catalog-be/internal/repository/contract"
	"solar-catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// translateError maps driver constraint errors (surfaced by gorm's
// TranslateError option) to the repository contract errors.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return contract.ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return contract.ErrReferenced
	default:
		return err
	}
}
