package service

import (
	"errors"

	"collab-server/repository"
)

// Error kinds the HTTP layer branches on. Permission and not-found failures
// are deterministic; anything else escaping a transaction is opaque and may
// be retried by the caller.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
)

// storeErr translates repository sentinels into service error kinds.
func storeErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	}
	return err
}
