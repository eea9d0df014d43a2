package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	// ErrStoreUnavailable means no usable connection to the catalog store.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
	// ErrQueryFailed means the store was reachable but rejected or aborted a
	// statement.
	ErrQueryFailed = errors.New("catalog query failed")
)

// Classify wraps a store error in ErrStoreUnavailable or ErrQueryFailed so
// callers can tell the two apart with errors.Is. Nil stays nil and errors
// that are already classified are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrQueryFailed) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrQueryFailed, err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
