package entity

// Extension is the runtime's reference to an installed or pending web extension.
// It is owned by the extension runtime; this module only reads it.
type Extension struct {
	ID          string
	Name        string
	Version     string
	Permissions []string
	Enabled     bool

	// AllowedInPrivateBrowsing reports whether the extension may run in private tabs.
	AllowedInPrivateBrowsing bool
}

// DisplayName returns the extension name, falling back to its id.
func (e Extension) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

// Addon is the display-oriented projection of an Extension shown by dialogs.
// It is rebuilt for every prompt request and never persisted by the coordinator.
type Addon struct {
	ID          string
	Name        string
	Version     string
	Permissions []string

	// Installed is true once the runtime has completed installation.
	Installed bool

	AllowedInPrivateBrowsing bool
}

// NewAddonFromExtension builds the Addon projection for an extension.
func NewAddonFromExtension(ext Extension, installed bool) Addon {
	perms := make([]string, len(ext.Permissions))
	copy(perms, ext.Permissions)

	return Addon{
		ID:                       ext.ID,
		Name:                     ext.DisplayName(),
		Version:                  ext.Version,
		Permissions:              perms,
		Installed:                installed,
		AllowedInPrivateBrowsing: ext.AllowedInPrivateBrowsing,
	}
}

// WithPermissions returns a copy of the addon showing only the given permissions.
// The receiver is left untouched.
func (a Addon) WithPermissions(perms []string) Addon {
	out := a
	out.Permissions = make([]string, len(perms))
	copy(out.Permissions, perms)
	return out
}

// AddonMetadata holds descriptive data shown after an installation completes.
type AddonMetadata struct {
	AddonID  string
	Summary  string
	Homepage string
	Author   string
}
