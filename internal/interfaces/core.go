// Package interfaces defines the narrow capabilities the scaffolding core
// consumes from its host. The core never references host types directly;
// the CLI wires concrete implementations from the adapters package, and
// tests substitute doubles from testutils.
package interfaces

import (
	"context"

	"github.com/conneroisu/rfs/internal/config"
	"github.com/conneroisu/rfs/internal/errors"
)

// SettingsReader is the persisted key-value settings store.
type SettingsReader = config.SettingsReader

// Prompter asks the user for a single line of input, showing placeholder as
// a hint. ok is false when the user cancelled the prompt.
type Prompter interface {
	Prompt(ctx context.Context, placeholder string) (answer string, ok bool, err error)
}

// Notifier displays a message to the user. Implementations must be safe for
// concurrent use; sibling file creations report through it in parallel.
type Notifier interface {
	Notify(ctx context.Context, severity errors.Severity, message string)
}

// FileSystem is the set of filesystem primitives the materializer uses.
type FileSystem interface {
	// Exists reports whether anything is present at path.
	Exists(path string) (bool, error)
	// CreateDirectory creates a single directory. An error satisfying
	// errors.Is(err, fs.ErrExist) means the directory is already there.
	CreateDirectory(path string) error
	// CreateFile creates path with text as its content. It never touches an
	// existing file and reports fs.ErrExist instead.
	CreateFile(path, text string) error
}
