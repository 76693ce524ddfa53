// Package repository holds the in-memory record store.  These sentinel
// values let the service layer tell failure scenarios apart without
// inspecting error text.
package repository

import "errors"

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// ErrEmailExists is returned when a user with the same normalised email is
// already stored.
var ErrEmailExists = errors.New("email already exists")

// ErrImmutable is returned by Update on collections whose records may only
// be created and deleted.
var ErrImmutable = errors.New("record is immutable")
