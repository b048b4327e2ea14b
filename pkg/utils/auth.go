package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/survey-platform/pkg/types"
)

const FormClaimsKey = "form_claims"

var ErrNoFormClaims = errors.New("form claims not found in context")

// GetFormIDFromContext returns the form id granted by a verified access token.
var GetFormIDFromContext = func(c *gin.Context) (string, error) {
	claimsVal, exists := c.Get(FormClaimsKey)
	if !exists {
		return "", ErrNoFormClaims
	}

	claims, ok := claimsVal.(*types.FormClaims)
	if !ok {
		return "", errors.New("invalid form claims type")
	}

	return claims.FormID, nil
}
