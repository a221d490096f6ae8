package coordinator

import (
	"context"
	"fmt"

	"github.com/bnema/dumber-addons/internal/application/port"
	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/logging"
)

const (
	cantInstallExtensionTitle = "Can’t install this extension"

	blocklistedMessage     = "%s can’t be installed because of a high risk of causing stability or security issues."
	failedToInstallMessage = "Failed to install %s"
	genericFailedMessage   = "Failed to install extension"
	networkErrorMessage    = "The extension couldn’t be downloaded because of a connection failure."
	corruptFileMessage     = "This extension could not be installed because it appears to be corrupt."
	notSignedMessage       = "This extension could not be installed because it has not been verified."
	incompatibleMessageFmt = "%s is not compatible with %s %s."
)

// installFailedText maps an installation failure to dialog text.
// ok is false when nothing should be shown to the user.
func installFailedText(err entity.InstallError, app port.AppInfo) (title, message string, ok bool) {
	name := err.ExtensionName
	title = cantInstallExtensionTitle

	switch err.Kind {
	case entity.InstallErrorUserCancelled:
		return "", "", false
	case entity.InstallErrorBlocklisted:
		message = fmt.Sprintf(blocklistedMessage, name)
	case entity.InstallErrorNetworkFailure:
		message = networkErrorMessage
	case entity.InstallErrorCorruptFile:
		message = corruptFileMessage
	case entity.InstallErrorNotSigned:
		message = notSignedMessage
	case entity.InstallErrorIncompatible:
		message = fmt.Sprintf(incompatibleMessageFmt, name, app.Name(), app.Version())
	default:
		// The message already says "failed to install"; repeating it in the title reads badly.
		title = ""
		if name != "" {
			message = fmt.Sprintf(failedToInstallMessage, name)
		} else {
			message = genericFailedMessage
		}
	}

	return title, message, true
}

func (c *AddonPromptCoordinator) handleInstallationFailed(ctx context.Context, err entity.InstallError) {
	log := logging.FromContext(ctx)

	title, message, ok := installFailedText(err, c.appInfo)
	if !ok {
		log.Debug().Msg("installation cancelled by user, nothing to show")
		return
	}

	log.Info().Err(err).Msg("extension installation failed")

	c.dialogs.ShowAlert(ctx, port.AlertSpec{
		Title:           title,
		Message:         message,
		Button:          "OK",
		Cancelable:      false,
		CenteredButtons: true,
	})
}
