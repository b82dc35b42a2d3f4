package core

import (
	"context"

	"github.com/buemura/nessusctl/internal/query"
	"github.com/buemura/nessusctl/pkg/types"
)

// UserList lists the scanner's user accounts.
func (r *Runner) UserList(ctx context.Context, opts Options) error {
	return r.list(ctx, opts, query.KindUsers, func(ctx context.Context, c SessionClient) (types.Records, error) {
		return c.Users(ctx)
	})
}

// PolicyList lists the scan policies visible to the session user.
func (r *Runner) PolicyList(ctx context.Context, opts Options) error {
	return r.list(ctx, opts, query.KindPolicies, func(ctx context.Context, c SessionClient) (types.Records, error) {
		return c.Policies(ctx)
	})
}

// ScanList lists the scans visible to the session user.
func (r *Runner) ScanList(ctx context.Context, opts Options) error {
	return r.list(ctx, opts, query.KindScans, func(ctx context.Context, c SessionClient) (types.Records, error) {
		return c.Scans(ctx)
	})
}

// FolderList lists the scan folders.
func (r *Runner) FolderList(ctx context.Context, opts Options) error {
	return r.list(ctx, opts, query.KindFolders, func(ctx context.Context, c SessionClient) (types.Records, error) {
		return c.Folders(ctx)
	})
}

// PluginFamilyList lists the plugin families with their plugin counts.
func (r *Runner) PluginFamilyList(ctx context.Context, opts Options) error {
	return r.list(ctx, opts, query.KindFamilies, func(ctx context.Context, c SessionClient) (types.Records, error) {
		return c.PluginFamilies(ctx)
	})
}

// SettingList lists the scanner's advanced preference entries.
func (r *Runner) SettingList(ctx context.Context, opts Options) error {
	return r.list(ctx, opts, query.KindSettings, func(ctx context.Context, c SessionClient) (types.Records, error) {
		return c.AdvancedSettings(ctx)
	})
}
