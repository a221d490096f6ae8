// Package scenario replays scripted extension events against the prompt
// coordinator so the dialogs can be exercised without a browser.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bnema/dumber-addons/internal/domain/entity"
)

// Action names a scenario step.
type Action string

const (
	ActionRequiredPermissions Action = "required_permissions"
	ActionOptionalPermissions Action = "optional_permissions"
	ActionPostInstallation    Action = "post_installation"
	ActionInstallationFailed  Action = "installation_failed"
	ActionInstalling          Action = "installing"
	ActionAnswer              Action = "answer"
	ActionConsume             Action = "consume"
	ActionRestart             Action = "restart"
)

// Extension is an extension known to the scenario, with optional listing metadata.
type Extension struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Permissions []string `json:"permissions"`
	Summary     string   `json:"summary"`
	Homepage    string   `json:"homepage"`
	Author      string   `json:"author"`
}

// Entity returns the browser-side view of the extension.
func (e Extension) Entity() entity.Extension {
	return entity.Extension{
		ID:          e.ID,
		Name:        e.Name,
		Version:     e.Version,
		Permissions: append([]string(nil), e.Permissions...),
	}
}

// Metadata returns the listing metadata of the extension.
func (e Extension) Metadata() entity.AddonMetadata {
	return entity.AddonMetadata{
		AddonID:  e.ID,
		Summary:  e.Summary,
		Homepage: e.Homepage,
		Author:   e.Author,
	}
}

// Step is one scripted event.
type Step struct {
	Action Action `json:"action"`

	// Extension references Scenario.Extensions by id.
	Extension   string   `json:"extension,omitempty"`
	Permissions []string `json:"permissions,omitempty"`

	// Installation failures.
	Error         string `json:"error,omitempty"`
	ExtensionName string `json:"extension_name,omitempty"`

	// Installing flag value.
	Value bool `json:"value,omitempty"`

	// Answers to the oldest open dialog.
	Positive bool `json:"positive,omitempty"`
	Toggle   bool `json:"toggle,omitempty"`
}

// Scenario is a scripted sequence of extension events.
type Scenario struct {
	Extensions []Extension `json:"extensions"`
	Steps      []Step      `json:"steps"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks that every step is known and references a declared extension.
func (s *Scenario) Validate() error {
	known := make(map[string]bool, len(s.Extensions))
	for i, ext := range s.Extensions {
		if ext.ID == "" {
			return fmt.Errorf("extension %d: id is required", i)
		}
		if known[ext.ID] {
			return fmt.Errorf("extension %q declared twice", ext.ID)
		}
		known[ext.ID] = true
	}

	for i, step := range s.Steps {
		switch step.Action {
		case ActionRequiredPermissions, ActionOptionalPermissions, ActionPostInstallation:
			if !known[step.Extension] {
				return fmt.Errorf("step %d (%s): unknown extension %q", i+1, step.Action, step.Extension)
			}
		case ActionInstallationFailed, ActionInstalling, ActionAnswer, ActionConsume, ActionRestart:
		default:
			return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}
	}
	return nil
}

// Extension returns the declared extension with the given id.
func (s *Scenario) Extension(id string) (Extension, bool) {
	for _, ext := range s.Extensions {
		if ext.ID == id {
			return ext, true
		}
	}
	return Extension{}, false
}
