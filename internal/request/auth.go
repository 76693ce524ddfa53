// Package request declares the payload schemas accepted by each endpoint.
// Rules sit in `validate` tags and the message shown for a failing field sits
// in its `msg` tag.  Create schemas convert into new records; update schemas
// use pointer fields so that an absent field leaves the stored value alone.
package request

// Login is the body of POST /auth/login.
type Login struct {
    Email    string `json:"email" validate:"required,email" msg:"Email inválido"`
    Password string `json:"password" validate:"required" msg:"Senha é obrigatória"`
}
