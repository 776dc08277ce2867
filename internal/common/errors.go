// Package common defines shared constants and sentinel errors used across
// the relay and the secondary store. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Domain rejections surfaced by the group registry.
	ErrForbidden        = errors.New("forbidden")
	ErrAlreadyMember    = errors.New("already a member")
	ErrNotMember        = errors.New("not a member")
	ErrOwnerCannotLeave = errors.New("owner cannot leave")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
