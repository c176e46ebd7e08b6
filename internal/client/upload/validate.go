package upload

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel every *ValidationError unwraps to.
var ErrValidation = errors.New("validation failed")

// ValidationError is a client-side precondition failure. It never reaches
// the network.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// DefaultMaxUploadBytes bounds accepted files at 50 MiB.
const DefaultMaxUploadBytes int64 = 50 << 20

// defaultAcceptedTypes mirrors the formats the service processes.
var defaultAcceptedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

// Policy is the precondition set applied before any network call.
// The zero value selects the defaults.
type Policy struct {
	MaxBytes      int64
	AcceptedTypes []string
}

func (p Policy) withDefaults() Policy {
	if p.MaxBytes <= 0 {
		p.MaxBytes = DefaultMaxUploadBytes
	}
	if len(p.AcceptedTypes) == 0 {
		p.AcceptedTypes = defaultAcceptedTypes
	}
	return p
}

// validate applies the policy to the file's declared properties.
func (p Policy) validate(fileName, contentType string, size int64) error {
	if fileName == "" {
		return &ValidationError{Reason: "no file provided"}
	}
	if size <= 0 {
		return &ValidationError{Reason: fmt.Sprintf("file %q is empty", fileName)}
	}
	if size > p.MaxBytes {
		return &ValidationError{Reason: fmt.Sprintf(
			"file %q is %d bytes, over the %d MB limit", fileName, size, p.MaxBytes>>20)}
	}
	for _, accepted := range p.AcceptedTypes {
		if contentType == accepted {
			return nil
		}
	}
	return &ValidationError{Reason: fmt.Sprintf(
		"unsupported content type %q for %q", contentType, fileName)}
}
