package sessionx

import (
	"github.com/Abraxas-365/livex/pkg/errx"
)

var sessionErrors = errx.NewRegistry("SESSION")

var (
	errSignFailed   = sessionErrors.Register("SIGN_FAILED", errx.TypeInternal, "failed to sign session payload")
	errVerifyFailed = sessionErrors.Register("VERIFY_FAILED", errx.TypeValidation, "failed to verify session token")
)

// ErrSignFailed creates a sign failure error
func ErrSignFailed() *errx.Error {
	return sessionErrors.New(errSignFailed)
}

// ErrVerifyFailed creates a verification failure error
func ErrVerifyFailed() *errx.Error {
	return sessionErrors.New(errVerifyFailed)
}
