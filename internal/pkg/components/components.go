// Package components wires the process's collaborators together behind a
// singleton Container, mirroring the teacher's sync.Once-guarded assembly
// pattern but trimmed to what a single-shot CLI invocation needs: no HTTP
// router, no broker, no database driver.
package components

import (
	"fmt"
	"os"
	"sync"

	"github.com/robertohuertasm/payments-engine/internal/config"
	"github.com/robertohuertasm/payments-engine/internal/engine"
	"github.com/robertohuertasm/payments-engine/internal/metrics"
	"github.com/robertohuertasm/payments-engine/internal/pkg/logging"
	"github.com/robertohuertasm/payments-engine/internal/pkg/runid"
	"github.com/robertohuertasm/payments-engine/internal/store"
)

// Container holds every wired component for one process invocation.
type Container struct {
	Config  *config.Config
	RunID   string
	Logger  logging.Logger
	Metrics *metrics.Collectors
	Store   store.Store
	Engine  *engine.Engine
}

var (
	instance     *Container
	instanceOnce sync.Once
)

// GetInstance returns the process-wide singleton container, building it on
// first call.
func GetInstance() *Container {
	instanceOnce.Do(func() {
		instance = newContainer()
	})
	return instance
}

func newContainer() *Container {
	c := &Container{}

	c.Config = config.Load()
	c.RunID = runid.New()
	c.Logger = logging.New(c.Config.Logging, c.RunID, os.Stderr)
	c.Metrics = metrics.New()
	c.Store = store.NewMemory()
	c.Engine = engine.New(c.Store, c.Logger, c.Metrics)

	c.Logger.Info("components initialized", "run_id", c.RunID, "metrics_enabled", c.Config.Metrics.Enabled)
	return c
}

// FlushMetrics renders the container's metrics to stderr if metrics are
// enabled, returning any encoding error.
func (c *Container) FlushMetrics() error {
	if !c.Config.Metrics.Enabled {
		return nil
	}
	if err := c.Metrics.WriteTo(os.Stderr); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
