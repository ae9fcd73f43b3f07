package domain

import "errors"

var (
	// ErrSourceUnavailable reports that the router declaration source could
	// not be read. It is fatal: the check stops before scanning.
	ErrSourceUnavailable = errors.New("router source unavailable")

	// ErrScanRootUnavailable reports that the scan root is missing or is not
	// a directory.
	ErrScanRootUnavailable = errors.New("scan root unavailable")
)
