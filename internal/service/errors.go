package service

import (
	"errors"

	"github.com/tdiabate/farmpay/internal/settlement"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")

	// ErrInvalidInput is shared with the settlement package so calculation
	// failures surface as the same kind.
	ErrInvalidInput = settlement.ErrInvalidInput
)
