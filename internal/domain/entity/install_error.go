package entity

import "fmt"

// InstallErrorKind is the closed set of reasons an extension installation can fail.
type InstallErrorKind string

const (
	// InstallErrorBlocklisted means the extension is on the blocklist.
	InstallErrorBlocklisted InstallErrorKind = "blocklisted"

	// InstallErrorUserCancelled means the user aborted the installation.
	// It is not surfaced to the user.
	InstallErrorUserCancelled InstallErrorKind = "user_cancelled"

	// InstallErrorUnknown is any failure the runtime could not classify.
	InstallErrorUnknown InstallErrorKind = "unknown"

	// InstallErrorNetworkFailure means the package could not be downloaded.
	InstallErrorNetworkFailure InstallErrorKind = "network_failure"

	// InstallErrorCorruptFile means the downloaded package is corrupt.
	InstallErrorCorruptFile InstallErrorKind = "corrupt_file"

	// InstallErrorNotSigned means the package failed signature verification.
	InstallErrorNotSigned InstallErrorKind = "not_signed"

	// InstallErrorIncompatible means the extension does not support this application version.
	InstallErrorIncompatible InstallErrorKind = "incompatible"
)

// InstallErrorKinds lists every known kind, in declaration order.
func InstallErrorKinds() []InstallErrorKind {
	return []InstallErrorKind{
		InstallErrorBlocklisted,
		InstallErrorUserCancelled,
		InstallErrorUnknown,
		InstallErrorNetworkFailure,
		InstallErrorCorruptFile,
		InstallErrorNotSigned,
		InstallErrorIncompatible,
	}
}

// ParseInstallErrorKind converts a string to a kind. Unrecognised values map to Unknown.
func ParseInstallErrorKind(s string) InstallErrorKind {
	for _, k := range InstallErrorKinds() {
		if string(k) == s {
			return k
		}
	}
	return InstallErrorUnknown
}

// InstallError is the failure value reported by the extension runtime.
type InstallError struct {
	Kind InstallErrorKind
	// ExtensionName is empty when the runtime could not read the package.
	ExtensionName string
}

func (e InstallError) Error() string {
	if e.ExtensionName == "" {
		return fmt.Sprintf("extension install failed: %s", e.Kind)
	}
	return fmt.Sprintf("extension %q install failed: %s", e.ExtensionName, e.Kind)
}

// IsUserCancelled reports whether the failure is a user cancellation.
func (e InstallError) IsUserCancelled() bool {
	return e.Kind == InstallErrorUserCancelled
}
