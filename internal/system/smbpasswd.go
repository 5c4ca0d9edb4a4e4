package system

import (
	"context"
	"fmt"

	"github.com/uglygus/sambactl/internal/logger"
	"github.com/uglygus/sambactl/internal/privexec"
)

// Smbpasswd manages Samba credentials for share owners.
type Smbpasswd struct {
	exec privexec.Executor
}

// NewSmbpasswd returns a credential manager using the given executor.
func NewSmbpasswd(exec privexec.Executor) *Smbpasswd {
	return &Smbpasswd{exec: exec}
}

// SetPassword runs smbpasswd -a attached to the terminal so the user can
// type the new password interactively.
func (s *Smbpasswd) SetPassword(ctx context.Context, username string) error {
	logger.Info("setting samba password", "user", username)
	if err := s.exec.RunInteractive(ctx, privexec.MustNew("smbpasswd", "-a", username)); err != nil {
		return fmt.Errorf("failed to set samba password for %s: %w", username, err)
	}
	return nil
}

// EnableAccount enables the Samba account.
func (s *Smbpasswd) EnableAccount(ctx context.Context, username string) error {
	if _, err := s.exec.Run(ctx, privexec.MustNew("smbpasswd", "-e", username)); err != nil {
		return fmt.Errorf("failed to enable samba account for %s: %w", username, err)
	}
	return nil
}
