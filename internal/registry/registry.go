// Package registry implements share management on top of the config store
// and the section grammar: listing the shares defined in smb.conf, adding
// a share block, and removing one.
//
// The registry is stateless between calls; the only durable state is the
// config file itself, re-read on every operation. Every mutation backs up
// the file to the single-slot backup location first. There is no rollback:
// if a mutation fails after the backup, recovery is manual from the .bak
// file.
package registry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/uglygus/sambactl/internal/confstore"
	"github.com/uglygus/sambactl/internal/logger"
	"github.com/uglygus/sambactl/internal/privexec"
	"github.com/uglygus/sambactl/internal/smbconf"
)

// ErrShareExists reports an add for a name that is already defined.
var ErrShareExists = errors.New("share already exists")

// globalSection is the reserved Samba section excluded from share listings.
const globalSection = "global"

// AccountEnsurer provisions system accounts for share owners.
type AccountEnsurer interface {
	EnsureAccount(ctx context.Context, username string) error
}

// CredentialManager manages Samba credentials for share owners.
type CredentialManager interface {
	SetPassword(ctx context.Context, username string) error
	EnableAccount(ctx context.Context, username string) error
}

// Registry composes the config store, the section grammar, and the system
// collaborators into the share operations.
type Registry struct {
	store    *confstore.Store
	exec     privexec.Executor
	accounts AccountEnsurer
	creds    CredentialManager
}

// New builds a Registry.
func New(store *confstore.Store, exec privexec.Executor, accounts AccountEnsurer, creds CredentialManager) *Registry {
	return &Registry{store: store, exec: exec, accounts: accounts, creds: creds}
}

// List returns the shares in config-file order. The global section is
// excluded, a section without a path contributes an empty path, and a
// missing config file yields an empty list rather than an error. When the
// file holds hand-edited duplicate names, the last occurrence's path wins
// but the share keeps its first position.
func (r *Registry) List(ctx context.Context) ([]Share, error) {
	text, err := r.store.Read(ctx)
	if errors.Is(err, confstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var shares []Share
	index := make(map[string]int)
	for _, sec := range smbconf.Parse(text).Sections {
		if strings.EqualFold(sec.Name, globalSection) {
			continue
		}
		path, _ := sec.Path()
		if i, seen := index[sec.Name]; seen {
			shares[i].Path = path
			continue
		}
		index[sec.Name] = len(shares)
		shares = append(shares, Share{Name: sec.Name, Path: path})
	}
	return shares, nil
}

// Add creates the share directory, provisions ownership and credentials
// for non-guest shares, and appends the rendered block to the config file
// after backing it up. A name that is already defined is rejected with
// ErrShareExists.
func (r *Registry) Add(ctx context.Context, req AddRequest) error {
	if err := validateAdd(req); err != nil {
		return err
	}
	if err := r.checkDuplicate(ctx, req.Name); err != nil {
		return err
	}

	if err := os.MkdirAll(req.Path, 0o755); err != nil {
		return fmt.Errorf("failed to create share directory %s: %w", req.Path, err)
	}

	if !req.Guest {
		if err := r.accounts.EnsureAccount(ctx, req.Owner); err != nil {
			return err
		}
		owner := fmt.Sprintf("%s:%s", req.Owner, req.Owner)
		if _, err := r.exec.Run(ctx, privexec.MustNew("chown", "-R", owner, req.Path)); err != nil {
			return err
		}
	}
	if _, err := r.exec.Run(ctx, privexec.MustNew("chmod", "-R", "777", req.Path)); err != nil {
		return err
	}

	if err := r.store.Backup(ctx); err != nil {
		return err
	}
	if err := r.store.Append(ctx, smbconf.RenderShareBlock(req.Name, req.Path, req.Guest)); err != nil {
		return fmt.Errorf("failed to append share block: %w", err)
	}
	logger.Info("share added", "share", req.Name, "path", req.Path, "guest", req.Guest)

	if !req.Guest {
		if err := r.creds.SetPassword(ctx, req.Owner); err != nil {
			return err
		}
		if err := r.creds.EnableAccount(ctx, req.Owner); err != nil {
			return err
		}
	}
	return nil
}

// Remove drops the first section matching name and rewrites the config
// file after backing it up. It returns confstore.ErrNotFound when the file
// is absent, before any mutation. A name with no matching section is a
// successful no-op: the file is rewritten unchanged and found is false.
func (r *Registry) Remove(ctx context.Context, name string) (found bool, err error) {
	text, err := r.store.Read(ctx)
	if err != nil {
		return false, err
	}

	doc := smbconf.Parse(text)
	found = doc.Remove(name)
	if !found {
		logger.Warn("share not present in config", "share", name)
	}

	if err := r.store.Backup(ctx); err != nil {
		return found, err
	}
	if err := r.store.Replace(ctx, doc.Render()); err != nil {
		return found, fmt.Errorf("failed to rewrite config: %w", err)
	}
	if found {
		logger.Info("share removed", "share", name)
	}
	return found, nil
}

func validateAdd(req AddRequest) error {
	if req.Name == "" {
		return errors.New("share name is required")
	}
	if strings.ContainsAny(req.Name, "[]\n") {
		return fmt.Errorf("share name %q contains reserved characters", req.Name)
	}
	if strings.EqualFold(req.Name, globalSection) {
		return fmt.Errorf("share name %q is reserved", req.Name)
	}
	if req.Path == "" {
		return errors.New("share path is required")
	}
	if !req.Guest && req.Owner == "" {
		return errors.New("owner is required for an authenticated share")
	}
	return nil
}

// checkDuplicate rejects adds for names already present. A missing config
// file means no duplicates are possible.
func (r *Registry) checkDuplicate(ctx context.Context, name string) error {
	text, err := r.store.Read(ctx)
	if errors.Is(err, confstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, sec := range smbconf.Parse(text).Sections {
		if sec.Name == name {
			return fmt.Errorf("%w: %q", ErrShareExists, name)
		}
	}
	return nil
}
