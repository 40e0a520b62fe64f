package usecase

import (
	"errors"

	"gwansang/internal/usecase/interfaces"
)

// maxUpdateAttempts bounds the read-modify-write loop when another writer
// bumped the record version between our read and our write.
const maxUpdateAttempts = 3

func retryOnConflict[T any](fn func() (T, error)) (T, error) {
	var (
		out T
		err error
	)
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		out, err = fn()
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			return out, err
		}
	}
	var zero T
	return zero, err
}
