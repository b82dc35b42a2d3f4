package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/buemura/nessusctl/pkg/types"
)

// ServerStatus returns the scanner's run status from GET /server/status.
func (c *Client) ServerStatus(ctx context.Context) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/server/status", &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// ServerProperties returns the full GET /server/properties document. It is
// kept as a raw record so license.ips, used_ip_count, server_version and the
// rest stay available to both the typed accessors and user projections.
func (c *Client) ServerProperties(ctx context.Context) (types.Record, error) {
	var out types.Record
	if err := c.do(ctx, http.MethodGet, "/server/properties", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SessionInfo returns the record describing the currently logged-in user.
func (c *Client) SessionInfo(ctx context.Context) (types.Record, error) {
	var out types.Record
	if err := c.do(ctx, http.MethodGet, "/session", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Users lists the scanner's user accounts.
func (c *Client) Users(ctx context.Context) (types.Records, error) {
	var out struct {
		Users types.Records `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// Policies lists the scan policies visible to the session user.
func (c *Client) Policies(ctx context.Context) (types.Records, error) {
	var out struct {
		Policies types.Records `json:"policies"`
	}
	if err := c.do(ctx, http.MethodGet, "/policies", &out); err != nil {
		return nil, err
	}
	return out.Policies, nil
}

// Scans lists the scans visible to the session user.
func (c *Client) Scans(ctx context.Context) (types.Records, error) {
	var out struct {
		Scans types.Records `json:"scans"`
	}
	if err := c.do(ctx, http.MethodGet, "/scans", &out); err != nil {
		return nil, err
	}
	return out.Scans, nil
}

// Folders lists the scan folders.
func (c *Client) Folders(ctx context.Context) (types.Records, error) {
	var out struct {
		Folders types.Records `json:"folders"`
	}
	if err := c.do(ctx, http.MethodGet, "/folders", &out); err != nil {
		return nil, err
	}
	return out.Folders, nil
}

// PluginFamilies lists the plugin families and their plugin counts.
func (c *Client) PluginFamilies(ctx context.Context) (types.Records, error) {
	var out struct {
		Families types.Records `json:"families"`
	}
	if err := c.do(ctx, http.MethodGet, "/plugins/families", &out); err != nil {
		return nil, err
	}
	return out.Families, nil
}

// AdvancedSettings lists the scanner's advanced preference entries.
func (c *Client) AdvancedSettings(ctx context.Context) (types.Records, error) {
	var out struct {
		Preferences types.Records `json:"preferences"`
	}
	if err := c.do(ctx, http.MethodGet, "/settings/advanced", &out); err != nil {
		return nil, err
	}
	return out.Preferences, nil
}

// DeletePolicy removes one scan policy by id.
func (c *Client) DeletePolicy(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/policies/%d", id), nil)
}

// DeleteScan removes one scan by id.
func (c *Client) DeleteScan(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/scans/%d", id), nil)
}
