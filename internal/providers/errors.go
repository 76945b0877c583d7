package providers

import "errors"

// Sentinel errors carried by failed outcomes.
var (
	// ErrCredentials indicates missing or rejected service credentials.
	ErrCredentials = errors.New("service credentials unavailable")
	// ErrServiceCall indicates a transport failure or non-success status.
	ErrServiceCall = errors.New("service call failed")
	// ErrMalformedResponse indicates a response body that could not be decoded.
	ErrMalformedResponse = errors.New("malformed service response")
	// ErrEmptyResult indicates a generator returned no page content.
	ErrEmptyResult = errors.New("service returned an empty result")
	// ErrUnsupportedDocument indicates an input that is neither a PDF nor an image.
	ErrUnsupportedDocument = errors.New("unsupported document type")
)
