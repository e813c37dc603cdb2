package domain

import "errors"

// Business errors (mapped onto HTTP codes in the transport layer).
// KeyNotFound vs DocumentNotFound stay distinct so clients can tell which
// lookup failed; Forbidden never reveals whether the key exists under
// another owner.
var (
	ErrBadParams        = errors.New("bad_params")         // 400
	ErrInvalidKeyFormat = errors.New("invalid_key_format") // 400, malformed base64/DER
	ErrUnauth           = errors.New("unauthorized")       // 401
	ErrForbidden        = errors.New("forbidden")          // 403, ownership check failed
	ErrKeyNotFound      = errors.New("key_not_found")      // 404
	ErrDocNotFound      = errors.New("document_not_found") // 404
	ErrNotFound         = errors.New("not_found")          // 404, generic
	ErrMethodNotAllowed = errors.New("method_not_allowed") // 405
	ErrStorage          = errors.New("storage_error")      // 503, backend unavailable (retryable)
	ErrUnexpected       = errors.New("unexpected")         // 500, incl. fatal RNG/crypto failures
)

// Envelope error codes
const (
	ErrCodeBadParams        = 1000
	ErrCodeUnauth           = 1001
	ErrCodeForbidden        = 1003
	ErrCodeNotFound         = 1004
	ErrCodeMethodNotAllowed = 1005
	ErrCodeKeyNotFound      = 1014
	ErrCodeDocNotFound      = 1024
	ErrCodeInvalidKey       = 1030
	ErrCodeStorage          = 1053
	ErrCodeUnexpected       = 1500
)
