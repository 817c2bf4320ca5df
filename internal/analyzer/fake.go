package analyzer

import (
	"context"
	"sync"

	"github.com/tatianab/snapwave/internal/models"
)

// Fake is a scripted Analyzer for tests and the simulator. Each call pops the
// next queued result; when the script runs out, the last result repeats.
type Fake struct {
	mu      sync.Mutex
	Results []*models.PhotoAnalysis
	Err     error
}

func (f *Fake) Analyze(ctx context.Context, jpeg []byte) (*models.PhotoAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Results) == 0 {
		return &models.PhotoAnalysis{}, nil
	}
	result := f.Results[0]
	if len(f.Results) > 1 {
		f.Results = f.Results[1:]
	}
	return result, nil
}
