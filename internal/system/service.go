package system

import (
	"context"
	"fmt"

	"github.com/uglygus/sambactl/internal/logger"
	"github.com/uglygus/sambactl/internal/privexec"
)

// ServiceController restarts systemd services.
type ServiceController struct {
	exec privexec.Executor
}

// NewServiceController returns a controller using the given executor.
func NewServiceController(exec privexec.Executor) *ServiceController {
	return &ServiceController{exec: exec}
}

// Restart restarts the named service and waits for systemctl to return.
func (c *ServiceController) Restart(ctx context.Context, name string) error {
	logger.Info("restarting service", "service", name)
	if _, err := c.exec.Run(ctx, privexec.MustNew("systemctl", "restart", name)); err != nil {
		return fmt.Errorf("failed to restart %s: %w", name, err)
	}
	return nil
}
