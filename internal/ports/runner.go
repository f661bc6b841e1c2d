package ports

import (
	"context"

	"github.com/glot-run/glotctl/internal/domain"
)

// Runner executes code on the service.
type Runner interface {
	// Run submits a run request and returns the decoded result.
	Run(ctx context.Context, req domain.RunRequest) (domain.RunResult, error)
}
