// Package analyzer turns a captured photo into a normalized PhotoAnalysis
// using a cloud vision model.
package analyzer

import (
	"context"
	"errors"

	"github.com/tatianab/snapwave/internal/models"
)

// ErrMalformedResponse wraps any failure to extract or parse the model's
// structured output.
var ErrMalformedResponse = errors.New("malformed analyzer response")

// Analyzer classifies the people in one JPEG-encoded photo.
type Analyzer interface {
	Analyze(ctx context.Context, jpeg []byte) (*models.PhotoAnalysis, error)
}
