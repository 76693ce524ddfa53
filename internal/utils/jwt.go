package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel errors for token parsing
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// BearerPrefix is prepended to issued tokens and expected in the
// Authorization header.
const BearerPrefix = "Bearer "

// ErrUnexpectedSigningMethod is returned when a token was not signed with
// HMAC.  Accepting other algorithms would let a caller pick "none".
var ErrUnexpectedSigningMethod = errors.New("unexpected signing method")

// Claims is the payload of a session token: the principal's id and email
// plus the registered iat/exp claims.
type Claims struct {
    UserID string `json:"userId"`
    Email  string `json:"email"`
    jwt.RegisteredClaims
}

// AccessToken is a signed session token and its expiry.
type AccessToken struct {
    Token string    // the serialized JWT string, without the Bearer prefix
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a principal, valid for ttl
// starting at now.
func NewAccessToken(secret, userID, email string, ttl time.Duration, now time.Time) (AccessToken, error) {
    now = now.UTC()
    exp := now.Add(ttl)
    claims := Claims{
        UserID: userID,
        Email:  email,
        RegisteredClaims: jwt.RegisteredClaims{
            Subject:   userID,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(exp),
        },
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of raw and returns its
// claims.  Tokens without an exp claim are rejected.
func ParseAccessToken(secret, raw string) (*Claims, error) {
    claims := &Claims{}
    tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
        // Type assert the signing method to HMAC; reject others.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrUnexpectedSigningMethod
        }
        return []byte(secret), nil
    }, jwt.WithExpirationRequired())
    if err != nil {
        return nil, err
    }
    if !tok.Valid {
        return nil, jwt.ErrTokenSignatureInvalid
    }
    return claims, nil
}
