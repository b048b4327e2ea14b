package types

import "github.com/golang-jwt/jwt/v5"

// FormClaims grants access to a single protected form.
type FormClaims struct {
	FormID string `json:"form_id"`
	jwt.RegisteredClaims
}
