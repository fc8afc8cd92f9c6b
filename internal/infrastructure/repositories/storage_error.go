package repositories

import (
	"errors"

	domainerrors "dashmart.backend/internal/domain/errors"
)

// storageErr marks a database failure so callers can fail closed on it.
// Not-found is never wrapped; absence is an ordinary outcome.
func storageErr(err error) error {
	return errors.Join(domainerrors.ErrStorage, err)
}
