package apperr

import "errors"

const (
	KindFormat     = "format"
	KindValidation = "validation"
	KindHeader     = "header"
	KindInternal   = "internal"
)

// Kind classifies err for history records and reports. A nil error has no kind.
func Kind(err error) string {
	if err == nil {
		return ""
	}

	var fe *FormatError
	if errors.As(err, &fe) {
		return KindFormat
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}

	var he *HeaderError
	if errors.As(err, &he) {
		return KindHeader
	}

	return KindInternal
}

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	switch Kind(err) {
	case KindFormat, KindValidation, KindHeader:
		return true
	default:
		return false
	}
}
