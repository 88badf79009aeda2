package service

import (
	"errors"

	"ledgersynth/storage"
)

// Errors surfaced to callers. Content provider failures never appear here:
// the provider absorbs them.
var (
	ErrNotFound     = storage.ErrNotFound
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)
