package config

import (
	"fyne.io/fyne/v2"

	"github.com/zenchantlive/SpeedTake/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyOutputFormat       = "output_format"
	KeyOutputFolder       = "output_folder"
	KeyAutoOpenOnComplete = "auto_open_on_complete"
)

// Default values
const (
	DefaultOutputFormat       = model.FormatMP3
	DefaultAutoOpenOnComplete = false
)

// Settings manages persisted application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputFormat returns the persisted output format, falling back to the
// default when unset or invalid.
func (s *Settings) GetOutputFormat() model.OutputFormat {
	stored := s.app.Preferences().String(KeyOutputFormat)
	format, err := model.ParseOutputFormat(stored)
	if err != nil {
		s.SetOutputFormat(DefaultOutputFormat)
		return DefaultOutputFormat
	}
	return format
}

// SetOutputFormat persists the output format
func (s *Settings) SetOutputFormat(format model.OutputFormat) {
	s.app.Preferences().SetString(KeyOutputFormat, format.String())
}

// GetOutputFolder returns the persisted output folder; "" means outputs go
// next to their source files.
func (s *Settings) GetOutputFolder() string {
	return s.app.Preferences().String(KeyOutputFolder)
}

// SetOutputFolder persists the output folder
func (s *Settings) SetOutputFolder(dir string) {
	s.app.Preferences().SetString(KeyOutputFolder, dir)
}

// GetAutoOpenOnComplete returns whether to open the output folder after a
// fully successful batch
func (s *Settings) GetAutoOpenOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoOpenOnComplete, DefaultAutoOpenOnComplete)
}

// SetAutoOpenOnComplete sets whether to open the output folder after a
// fully successful batch
func (s *Settings) SetAutoOpenOnComplete(autoOpen bool) {
	s.app.Preferences().SetBool(KeyAutoOpenOnComplete, autoOpen)
}
