package authgw

import "errors"

// Auth failures are surfaced to callers as errors whose message is the exact
// user-facing string; the UI prints them verbatim. Use errors.Is to match.
var (
	ErrEmailExists      = errors.New("This Email already exists")
	ErrEmailNotFound    = errors.New("This Email does not exist")
	ErrInvalidPassword  = errors.New("This password is not correct")
	ErrUnknownErrorCode = errors.New("An unknown errorCode occured")
	ErrUnknownError     = errors.New("An unknown error occured")
)

// mapProviderCode translates a provider error code into its fixed
// user-facing error. Matching is exact and case-sensitive; any other code
// maps to ErrUnknownErrorCode.
func mapProviderCode(code string) error {
	switch code {
	case "EMAIL_EXISTS":
		return ErrEmailExists
	case "EMAIL_NOT_FOUND":
		return ErrEmailNotFound
	case "INVALID_PASSWORD":
		return ErrInvalidPassword
	default:
		return ErrUnknownErrorCode
	}
}
