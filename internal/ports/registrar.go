package ports

import (
	"context"

	"github.com/glot-run/glotctl/internal/domain"
)

// Registrar registers language runtimes with the service's admin
// endpoint. Implementations handle serialization, transport, and
// authentication.
type Registrar interface {
	// Register submits one language descriptor.
	// Returns nil when the service acknowledged the registration.
	Register(ctx context.Context, lang domain.Language) error
}
