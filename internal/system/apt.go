// Package system wraps the external host tools this CLI drives: apt,
// adduser, systemctl, and smbpasswd. Every type is a thin layer over a
// privexec.Executor so the same code works for root and sudo-delegated
// runs.
package system

import (
	"context"
	"errors"

	"github.com/uglygus/sambactl/internal/logger"
	"github.com/uglygus/sambactl/internal/privexec"
)

// AptManager installs Debian packages through apt-get.
type AptManager struct {
	exec privexec.Executor
}

// NewAptManager returns an AptManager using the given executor.
func NewAptManager(exec privexec.Executor) *AptManager {
	return &AptManager{exec: exec}
}

// IsInstalled reports whether the package is installed, via dpkg -s.
func (m *AptManager) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	_, err := m.exec.Run(ctx, privexec.MustNew("dpkg", "-s", pkg))
	if err != nil {
		var exitErr *privexec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Install installs the package unconditionally.
func (m *AptManager) Install(ctx context.Context, pkg string) error {
	logger.Info("installing package", "package", pkg)
	_, err := m.exec.Run(ctx, privexec.MustNew("apt-get", "install", "-y", pkg))
	return err
}

// EnsureInstalled installs the package only when dpkg does not know it.
func (m *AptManager) EnsureInstalled(ctx context.Context, pkg string) error {
	installed, err := m.IsInstalled(ctx, pkg)
	if err != nil {
		return err
	}
	if installed {
		logger.Debug("package already installed", "package", pkg)
		return nil
	}
	return m.Install(ctx, pkg)
}

// Update refreshes the package index.
func (m *AptManager) Update(ctx context.Context) error {
	_, err := m.exec.Run(ctx, privexec.MustNew("apt-get", "update"))
	return err
}

// Upgrade upgrades installed packages non-interactively.
func (m *AptManager) Upgrade(ctx context.Context) error {
	_, err := m.exec.Run(ctx, privexec.MustNew("apt-get", "upgrade", "-y"))
	return err
}
