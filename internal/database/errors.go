package database

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound checks if the error is a record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate checks if the error is a unique-constraint violation.
// TranslateError makes this driver-independent.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
