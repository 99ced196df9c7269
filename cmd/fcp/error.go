package main

import "errors"

var (
	// ErrChecksumMismatch is an error that occurs when the destination
	// content does not hash to the same checksum as the source, which
	// usually means underlying transfer or hardware issues.
	ErrChecksumMismatch = errors.New("checksum mismatch between source and destination")

	// ErrUnknownCompression is an error that occurs when the configured
	// compression is not one of the supported selections.
	ErrUnknownCompression = errors.New("unknown compression selection")

	// ErrUsage is an error that occurs when the command line does not
	// name exactly one source and one destination.
	ErrUsage = errors.New("usage: fcp [flags] <source> <destination>")
)
