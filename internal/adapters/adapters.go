// Package adapters provides the command-line implementations of the host
// capabilities declared in package interfaces: a viper-backed settings store,
// a line prompter, a styled console notifier and an afero filesystem.
package adapters

import (
	"github.com/spf13/viper"

	"github.com/conneroisu/rfs/internal/interfaces"
)

// NewViperSettings exposes v as the persisted settings store. A nil v means
// the global viper instance.
func NewViperSettings(v *viper.Viper) interfaces.SettingsReader {
	if v == nil {
		return viper.GetViper()
	}
	return v
}
