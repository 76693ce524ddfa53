package model

import "time"

// Meta holds the server-managed attributes shared by every record.  The
// repository assigns ID and CreatedAt on create and UpdatedAt on every
// modification; clients can never set them.
//
// Fields:
//  ID        – opaque unique identifier (UUID), never reused.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last modification timestamp; zero (and omitted) for
//              immutable records such as meltdowns and users.
type Meta struct {
    ID        string    `json:"id"`
    CreatedAt time.Time `json:"createdAt"`
    UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Metadata exposes the embedded Meta to generic code.
func (m *Meta) Metadata() *Meta { return m }

// Record is the constraint satisfied by a pointer to any stored entity.
// Matches reports whether the record passes a single equality (or range)
// filter; unknown keys match everything.
type Record[E any] interface {
    *E
    Metadata() *Meta
    Matches(key, value string) bool
}

// Detacher is implemented by records with reference-typed fields.  Detach
// gives the receiver private copies of them.
type Detacher interface {
    Detach()
}

// Child is implemented by records that belong to a profile.
type Child interface {
    ProfileRef() string
}
