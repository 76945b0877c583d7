package main

import (
	"errors"
	"os"

	doc2web "github.com/alnah/go-doc2web"
	"github.com/alnah/go-doc2web/internal/config"
)

// Exit codes for the doc2web CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Page generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Artifact could not be written
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, doc2web.ErrWriteArtifact) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, doc2web.ErrInvalidOutput) ||
		errors.Is(err, doc2web.ErrInvalidProvider) ||
		errors.Is(err, doc2web.ErrPageRender) ||
		errors.Is(err, doc2web.ErrStyleNotFound) ||
		errors.Is(err, doc2web.ErrTemplateNotFound) ||
		errors.Is(err, doc2web.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
