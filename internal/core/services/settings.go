package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driven"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driving"
	"github.com/custodia-labs/trsgrid/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyInputEncoding      = "input.encoding"
	KeyOutputDir          = "output.dir"
	KeyOutputExtension    = "output.extension"
	KeyPipelineProcessors = "pipeline.processors"
)

// SettingsKeys lists the keys accepted by Set, in display order.
var SettingsKeys = []string{KeyInputEncoding, KeyOutputDir, KeyOutputExtension, KeyPipelineProcessors}

// SettingsService manages persistent settings.
// A nil config store yields defaults and rejects writes.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the stored settings with defaults for missing keys.
// A stored extension that fails validation is ignored with a warning.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings
	}

	if v := s.configStore.GetString(KeyInputEncoding); v != "" {
		settings.Input.Encoding = v
	}
	settings.Output.Dir = s.configStore.GetString(KeyOutputDir)
	if v := s.configStore.GetString(KeyOutputExtension); v != "" {
		if err := domain.ValidateExtension(v); err != nil {
			logger.Warn("ignoring %s: %v", KeyOutputExtension, err)
		} else {
			settings.Output.Extension = v
		}
	}
	if v := s.configStore.GetStringSlice(KeyPipelineProcessors); len(v) > 0 {
		settings.Pipeline.Processors = v
	}
	return settings
}

// Set validates and stores one setting. The new value is applied to the
// current settings and the result must pass domain.Settings.Validate.
// Processor lists are given comma-separated, e.g. "collapse-whitespace,intervals".
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return errors.New("settings store not configured")
	}

	value = strings.TrimSpace(value)
	settings := s.Get()
	var stored any = value

	switch key {
	case KeyInputEncoding:
		settings.Input.Encoding = value
	case KeyOutputDir:
		settings.Output.Dir = value
	case KeyOutputExtension:
		settings.Output.Extension = value
	case KeyPipelineProcessors:
		processors := splitList(value)
		settings.Pipeline.Processors = processors
		stored = processors
	default:
		return fmt.Errorf("%w: unknown setting %q (known: %s)",
			domain.ErrInvalidInput, key, strings.Join(SettingsKeys, ", "))
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return s.configStore.Set(key, stored)
}

// Path returns the settings file path, or "" without a store.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
