package service

import "errors"

// Tags for failures that cross the request boundary. Callers match them with
// errors.Is; the wrapped cause is kept for logging.
var (
	ErrCreateFailed = errors.New("create failed")
	ErrSyncFailed   = errors.New("sync failed")
	ErrFetchFailed  = errors.New("fetch failed")
	ErrInvalidInput = errors.New("invalid input")
)
