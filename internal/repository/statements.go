package repository

import (
	"errors"
	"fmt"
	"io"
)

func prepareError(name string, err error) error {
	return fmt.Errorf("failed to prepare %s: %w", name, err)
}

// closeAll closes the given prepared statements and joins their errors.
func closeAll(stmts ...io.Closer) error {
	var errs []error
	for _, s := range stmts {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
