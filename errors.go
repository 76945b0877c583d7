package doc2web

import (
	"errors"

	"github.com/alnah/go-doc2web/internal/config"
	"github.com/alnah/go-doc2web/internal/pipeline"
	"github.com/alnah/go-doc2web/internal/providers"
)

// Service errors. They never fail a conversion: they are logged when a
// stage falls back, and exported so callers can match logged causes.
var (
	ErrCredentials       = providers.ErrCredentials
	ErrServiceCall       = providers.ErrServiceCall
	ErrMalformedResponse = providers.ErrMalformedResponse
)

// Sentinel errors for library operations.
var (
	ErrWriteArtifact    = errors.New("failed to write artifact")
	ErrInvalidOutput    = config.ErrInvalidOutput
	ErrInvalidProvider  = errors.New("invalid render provider")
	ErrPageRender       = pipeline.ErrPageRender
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
