// Package app orchestrates manifest synchronization against the
// registrar port.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/glot-run/glotctl/internal/manifest"
	"github.com/glot-run/glotctl/internal/ports"
	"github.com/glot-run/glotctl/pkg/log"
)

// Syncer registers every language in a manifest file with the service.
type Syncer struct {
	registrar ports.Registrar
	logger    log.Logger
	path      string
}

// NewSyncer creates a syncer for the manifest at manifestPath.
func NewSyncer(registrar ports.Registrar, logger log.Logger, manifestPath string) *Syncer {
	return &Syncer{
		registrar: registrar,
		logger:    logger,
		path:      manifestPath,
	}
}

// Sync loads the manifest and registers each descriptor in file order.
// The first failure aborts the pass.
func (s *Syncer) Sync(ctx context.Context) error {
	langs, err := manifest.Load(s.path)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	for _, lang := range langs {
		if err := s.registrar.Register(ctx, lang); err != nil {
			return fmt.Errorf("register %s: %w", lang.Name, err)
		}
	}

	s.logger.Info("manifest synced", log.Int("languages", len(langs)))
	return nil
}

// Watch syncs once, then re-syncs whenever the manifest changes, until
// ctx is cancelled. Failed passes retry with exponential backoff.
func (s *Syncer) Watch(ctx context.Context) error {
	s.syncWithRetry(ctx)

	w := manifest.NewWatcher(s.path, 100*time.Millisecond, s.logger, s.syncWithRetry)
	return w.Watch(ctx)
}

// syncWithRetry retries until success or context cancellation.
func (s *Syncer) syncWithRetry(ctx context.Context) {
	bo := newBackoff(time.Second, 30*time.Second)
	for {
		if ctx.Err() != nil {
			return
		}
		err := s.Sync(ctx)
		if err == nil {
			return
		}
		s.logger.Warn("sync failed, retrying", log.Err(err))
		bo.Sleep(ctx)
	}
}
