package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// translate maps gorm errors onto domain sentinels; nil sentinels pass err through.
func translate(err error, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && isDuplicate(err):
		return duplicate
	}
	return err
}

// isDuplicate falls back to driver messages when the dialector did not translate.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "Duplicate entry")
}
