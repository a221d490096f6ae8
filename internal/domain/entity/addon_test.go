package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddonFromExtension(t *testing.T) {
	ext := Extension{
		ID:                       "ublock@example.org",
		Name:                     "uBlock",
		Version:                  "1.60.0",
		Permissions:              []string{"tabs", "storage"},
		AllowedInPrivateBrowsing: true,
	}

	addon := NewAddonFromExtension(ext, true)

	assert.Equal(t, "ublock@example.org", addon.ID)
	assert.Equal(t, "uBlock", addon.Name)
	assert.Equal(t, "1.60.0", addon.Version)
	assert.True(t, addon.Installed)
	assert.True(t, addon.AllowedInPrivateBrowsing)
	assert.Equal(t, []string{"tabs", "storage"}, addon.Permissions)

	// The projection must not alias the extension's slice.
	addon.Permissions[0] = "history"
	assert.Equal(t, "tabs", ext.Permissions[0])
}

func TestNewAddonFromExtension_NameFallsBackToID(t *testing.T) {
	addon := NewAddonFromExtension(Extension{ID: "nameless@example.org"}, false)
	assert.Equal(t, "nameless@example.org", addon.Name)
	assert.False(t, addon.Installed)
}

func TestAddon_WithPermissionsLeavesOriginal(t *testing.T) {
	addon := Addon{ID: "a", Permissions: []string{"tabs", "history"}}

	scoped := addon.WithPermissions([]string{"bookmarks"})

	assert.Equal(t, []string{"bookmarks"}, scoped.Permissions)
	assert.Equal(t, []string{"tabs", "history"}, addon.Permissions)
	assert.Equal(t, addon.ID, scoped.ID)
}

func TestLocalizePermissions(t *testing.T) {
	tests := []struct {
		name  string
		perms []string
		want  []string
	}{
		{
			name:  "no prompt needed",
			perms: []string{"storage", "alarms", "webRequest"},
			want:  []string{},
		},
		{
			name:  "known permissions keep order",
			perms: []string{"tabs", "storage", "bookmarks"},
			want:  []string{"Access browser tabs", "Read and modify bookmarks"},
		},
		{
			name:  "duplicate texts collapse",
			perms: []string{"history", "topSites"},
			want:  []string{"Access browsing history"},
		},
		{
			name:  "all urls via wildcard host",
			perms: []string{"*://*/*", "<all_urls>"},
			want:  []string{"Access your data for all websites"},
		},
		{
			name:  "domain and site patterns",
			perms: []string{"*://*.example.com/*", "https://mozilla.org:443/path"},
			want: []string{
				"Access your data for sites in the example.com domain",
				"Access your data for mozilla.org",
			},
		},
		{
			name:  "pattern without host",
			perms: []string{"file:///*"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalizePermissions(tt.perms))
		})
	}
}

func TestInstallError(t *testing.T) {
	var err error = InstallError{Kind: InstallErrorNotSigned, ExtensionName: "Foo"}

	var installErr InstallError
	require.True(t, errors.As(err, &installErr))
	assert.Equal(t, InstallErrorNotSigned, installErr.Kind)
	assert.Contains(t, err.Error(), `"Foo"`)
	assert.False(t, installErr.IsUserCancelled())

	assert.Equal(t, "extension install failed: unknown", InstallError{Kind: InstallErrorUnknown}.Error())
}

func TestParseInstallErrorKind(t *testing.T) {
	for _, k := range InstallErrorKinds() {
		assert.Equal(t, k, ParseInstallErrorKind(string(k)))
	}
	assert.Equal(t, InstallErrorUnknown, ParseInstallErrorKind("bogus"))
}

func TestPromptKind(t *testing.T) {
	ext := Extension{ID: "x"}
	assert.Equal(t, "installation_failed", PromptKind(NewInstallationFailedRequest(InstallError{})))
	assert.Equal(t, "permissions_required", PromptKind(NewRequiredPermissionsRequest(ext, nil, nil)))
	assert.Equal(t, "permissions_optional", PromptKind(NewOptionalPermissionsRequest(ext, nil, nil)))
	assert.Equal(t, "post_installation", PromptKind(NewPostInstallationRequest(ext)))
	assert.Equal(t, "none", PromptKind(nil))
}

func TestPromptRequestIDsAreUnique(t *testing.T) {
	ext := Extension{ID: "x"}
	a := NewPostInstallationRequest(ext)
	b := NewPostInstallationRequest(ext)
	assert.NotEmpty(t, a.RequestID())
	assert.NotEqual(t, a.RequestID(), b.RequestID())
}

func TestPermissionsRequest_ConfirmWithoutCallback(t *testing.T) {
	req := NewRequiredPermissionsRequest(Extension{ID: "x"}, nil, nil)
	assert.NotPanics(t, func() { req.Confirm(true) })

	var got *bool
	opt := NewOptionalPermissionsRequest(Extension{ID: "x"}, nil, func(granted bool) { got = &granted })
	opt.Confirm(false)
	require.NotNil(t, got)
	assert.False(t, *got)
}
