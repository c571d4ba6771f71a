package setting

import "errors"

var (
	// ErrSettingsNotFound is returned when no settings row has been stored yet
	ErrSettingsNotFound = errors.New("company settings not found")

	// ErrInvalidSettings is returned when a setter rejects its input
	ErrInvalidSettings = errors.New("invalid company settings")
)
