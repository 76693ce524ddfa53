package model

import "strings"

// User represents a principal allowed to log in.  Users are created only by
// bootstrap seeding and are immutable.
//
// Fields:
//  Email        – unique, stored lower-cased.
//  PasswordHash – bcrypt hash; never serialised.
//  Name         – display name.
//  Role         – informational role label (e.g. "admin").
type User struct {
    Meta
    Email        string `json:"email"`
    PasswordHash string `json:"-"`
    Name         string `json:"name"`
    Role         string `json:"role"`
}

const RoleAdmin = "admin"

func (u *User) Matches(key, value string) bool {
    switch key {
    case "email":
        return strings.EqualFold(u.Email, value)
    }
    return true
}
