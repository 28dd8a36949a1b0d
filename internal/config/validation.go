package config

import (
	"regexp"

	"github.com/conneroisu/rfs/internal/errors"
)

var (
	nameRegExp            = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)
	nameHasWordRegExp     = regexp.MustCompile(`[A-Za-z0-9]`)
	stylesExtensionRegExp = regexp.MustCompile(`^(\.[A-Za-z]+)+$`)
)

// ValidName reports whether name is usable as a folder or file base name.
// Names made only of separator characters (".", "_", "-") are rejected, which
// also rules out "." and "..".
func ValidName(name string) bool {
	return nameRegExp.MatchString(name) && nameHasWordRegExp.MatchString(name)
}

// ValidStylesExtension reports whether ext looks like ".css" or ".module.css".
func ValidStylesExtension(ext string) bool {
	return stylesExtensionRegExp.MatchString(ext)
}

// Validate checks folder names, file names and the styles extension. Unset
// (empty) overrides are not validated.
func (c Config) Validate() error {
	folders := []struct {
		field string
		value string
	}{
		{"styles", c.StylesFolder},
		{"types", c.TypesFolder},
		{"test", c.TestsFolder},
	}
	for _, f := range folders {
		if f.value != "" && !ValidName(f.value) {
			return errors.ErrInvalidFolderName(f.field)
		}
	}

	files := []struct {
		field string
		value string
	}{
		{"styles", c.StylesFileName},
		{"types", c.TypesFileName},
	}
	for _, f := range files {
		if f.value != "" && !ValidName(f.value) {
			return errors.ErrInvalidFileName(f.field)
		}
	}

	if c.StylesExtension != "" && !ValidStylesExtension(c.StylesExtension) {
		return errors.ErrInvalidStylesExtension(c.StylesExtension)
	}

	return nil
}
