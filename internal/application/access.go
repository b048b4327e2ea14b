package application

import (
	"github.com/linskybing/survey-platform/internal/domain/form"
	"github.com/linskybing/survey-platform/pkg/utils"
)

// Access is what a caller presented to open a protected form.
type Access struct {
	Password string
	// TokenFormID is the form id carried by a verified access token.
	TokenFormID string
}

func (a Access) grants(f *form.Form) bool {
	return a.TokenFormID != "" && a.TokenFormID == f.ID
}

// authorize lets anyone through an unprotected form. A protected form opens
// for a token issued for it, or for a password matching the stored digest.
// A protected form that has no digest accepts any non-empty password.
func authorize(f *form.Form, access Access) error {
	schema := f.Schema.Data()
	if !schema.Protected || access.grants(f) {
		return nil
	}
	if access.Password == "" {
		return ErrPasswordRequired
	}
	if schema.PasswordHash != nil && !utils.VerifyPassword(access.Password, *schema.PasswordHash) {
		return ErrInvalidPassword
	}
	return nil
}

// authorizeStrict is authorize without the missing digest allowance.
func authorizeStrict(f *form.Form, access Access) error {
	schema := f.Schema.Data()
	if !schema.Protected || access.grants(f) {
		return nil
	}
	if access.Password == "" || schema.PasswordHash == nil ||
		!utils.VerifyPassword(access.Password, *schema.PasswordHash) {
		return ErrPasswordRequiredOrInvalid
	}
	return nil
}
