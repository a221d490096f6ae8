package entity

import "github.com/google/uuid"

// PromptRequest is a pending extension prompt published by the extension runtime.
// The set of implementations is closed: InstallationFailedRequest,
// RequiredPermissionsRequest, OptionalPermissionsRequest and
// PostInstallationRequest.
type PromptRequest interface {
	// RequestID uniquely identifies the request; two values with the same id
	// are the same request.
	RequestID() string

	promptRequest()
}

// AfterInstallationRequest is a prompt tied to an extension the runtime already knows.
type AfterInstallationRequest interface {
	PromptRequest
	Extension() Extension
}

// PermissionsRequest asks the user to grant a set of permissions.
type PermissionsRequest interface {
	AfterInstallationRequest
	RequestedPermissions() []string
	// Confirm reports the user's decision back to the runtime.
	Confirm(granted bool)
}

// InstallationFailedRequest reports an installation that never completed.
type InstallationFailedRequest struct {
	ID  string
	Err InstallError
}

// NewInstallationFailedRequest creates a failure prompt with a fresh id.
func NewInstallationFailedRequest(err InstallError) *InstallationFailedRequest {
	return &InstallationFailedRequest{ID: uuid.NewString(), Err: err}
}

func (r *InstallationFailedRequest) RequestID() string { return r.ID }
func (*InstallationFailedRequest) promptRequest()      {}

// RequiredPermissionsRequest carries the permissions needed to finish an installation.
type RequiredPermissionsRequest struct {
	ID          string
	Ext         Extension
	Permissions []string
	OnConfirm   func(granted bool)
}

// NewRequiredPermissionsRequest creates a required-permissions prompt with a fresh id.
func NewRequiredPermissionsRequest(ext Extension, perms []string, onConfirm func(bool)) *RequiredPermissionsRequest {
	return &RequiredPermissionsRequest{
		ID:          uuid.NewString(),
		Ext:         ext,
		Permissions: perms,
		OnConfirm:   onConfirm,
	}
}

func (r *RequiredPermissionsRequest) RequestID() string              { return r.ID }
func (r *RequiredPermissionsRequest) Extension() Extension           { return r.Ext }
func (r *RequiredPermissionsRequest) RequestedPermissions() []string { return r.Permissions }
func (*RequiredPermissionsRequest) promptRequest()                   {}

func (r *RequiredPermissionsRequest) Confirm(granted bool) {
	if r.OnConfirm != nil {
		r.OnConfirm(granted)
	}
}

// OptionalPermissionsRequest carries extra permissions an installed extension asks for.
type OptionalPermissionsRequest struct {
	ID          string
	Ext         Extension
	Permissions []string
	OnConfirm   func(granted bool)
}

// NewOptionalPermissionsRequest creates an optional-permissions prompt with a fresh id.
func NewOptionalPermissionsRequest(ext Extension, perms []string, onConfirm func(bool)) *OptionalPermissionsRequest {
	return &OptionalPermissionsRequest{
		ID:          uuid.NewString(),
		Ext:         ext,
		Permissions: perms,
		OnConfirm:   onConfirm,
	}
}

func (r *OptionalPermissionsRequest) RequestID() string              { return r.ID }
func (r *OptionalPermissionsRequest) Extension() Extension           { return r.Ext }
func (r *OptionalPermissionsRequest) RequestedPermissions() []string { return r.Permissions }
func (*OptionalPermissionsRequest) promptRequest()                   {}

func (r *OptionalPermissionsRequest) Confirm(granted bool) {
	if r.OnConfirm != nil {
		r.OnConfirm(granted)
	}
}

// PostInstallationRequest signals a completed installation. No decision is expected.
type PostInstallationRequest struct {
	ID  string
	Ext Extension
}

// NewPostInstallationRequest creates a post-installation prompt with a fresh id.
func NewPostInstallationRequest(ext Extension) *PostInstallationRequest {
	return &PostInstallationRequest{ID: uuid.NewString(), Ext: ext}
}

func (r *PostInstallationRequest) RequestID() string    { return r.ID }
func (r *PostInstallationRequest) Extension() Extension { return r.Ext }
func (*PostInstallationRequest) promptRequest()         {}

// PromptKind returns a short name for the request variant, used in logs.
func PromptKind(req PromptRequest) string {
	switch req.(type) {
	case *InstallationFailedRequest:
		return "installation_failed"
	case *RequiredPermissionsRequest:
		return "permissions_required"
	case *OptionalPermissionsRequest:
		return "permissions_optional"
	case *PostInstallationRequest:
		return "post_installation"
	case nil:
		return "none"
	default:
		return "unknown"
	}
}

var (
	_ PermissionsRequest       = (*RequiredPermissionsRequest)(nil)
	_ PermissionsRequest       = (*OptionalPermissionsRequest)(nil)
	_ AfterInstallationRequest = (*PostInstallationRequest)(nil)
	_ PromptRequest            = (*InstallationFailedRequest)(nil)
)
