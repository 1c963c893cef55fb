package driving

import "github.com/custodia-labs/trsgrid/internal/core/domain"

// SettingsService reads and updates persistent settings.
type SettingsService interface {
	// Get returns the effective settings, with defaults for unset keys.
	Get() domain.Settings

	// Set stores a single setting by dotted key, e.g. "input.encoding".
	Set(key, value string) error

	// Path returns the location of the settings file.
	Path() string
}
