package system

import (
	"context"
	"errors"
	"fmt"
	"os/user"

	"github.com/uglygus/sambactl/internal/logger"
	"github.com/uglygus/sambactl/internal/privexec"
)

// Accounts provisions Linux system accounts for share owners.
type Accounts struct {
	exec privexec.Executor
}

// NewAccounts returns an Accounts provisioner using the given executor.
func NewAccounts(exec privexec.Executor) *Accounts {
	return &Accounts{exec: exec}
}

// EnsureAccount creates the system account if it does not already exist.
// The account is created without a login password; Samba access is granted
// separately through smbpasswd.
func (a *Accounts) EnsureAccount(ctx context.Context, username string) error {
	if _, err := user.Lookup(username); err == nil {
		logger.Debug("system user exists", "user", username)
		return nil
	} else {
		var unknown user.UnknownUserError
		if !errors.As(err, &unknown) {
			return fmt.Errorf("failed to look up user %s: %w", username, err)
		}
	}

	logger.Info("creating system user", "user", username)
	_, err := a.exec.Run(ctx, privexec.MustNew("adduser", "--gecos", "", "--disabled-password", username))
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", username, err)
	}
	return nil
}
