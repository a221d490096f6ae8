package extensionstore

import (
	"sync/atomic"

	"github.com/bnema/dumber-addons/internal/application/port"
)

// InstallFlag is the process-wide "an installation is in progress" flag.
// The installer sets it; prompt handling only reads it.
type InstallFlag struct {
	v atomic.Bool
}

// InProgress reports whether an installation is running.
func (f *InstallFlag) InProgress() bool {
	return f.v.Load()
}

// Set updates the flag.
func (f *InstallFlag) Set(inProgress bool) {
	f.v.Store(inProgress)
}

var _ port.InstallationState = (*InstallFlag)(nil)
