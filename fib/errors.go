package fib

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a term is requested at a negative index.
var ErrInvalidArgument = errors.New("invalid argument")

func checkIndex(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative index %d", ErrInvalidArgument, n)
	}
	return nil
}
