// Package workspace decides which directory a component path starts from.
package workspace

import (
	"context"
	"strings"

	"github.com/conneroisu/rfs/internal/config"
	"github.com/conneroisu/rfs/internal/errors"
	"github.com/conneroisu/rfs/internal/interfaces"
)

// PromptRootFolder is shown when the root has to be entered by hand.
const PromptRootFolder = "Enter absolute path to base folder (where path starts)"

// Resolver picks the root directory for one invocation.
type Resolver struct {
	fs       interfaces.FileSystem
	prompter interfaces.Prompter
	notifier interfaces.Notifier
}

// NewResolver creates a root resolver.
func NewResolver(fs interfaces.FileSystem, prompter interfaces.Prompter, notifier interfaces.Notifier) *Resolver {
	return &Resolver{fs: fs, prompter: prompter, notifier: notifier}
}

// Resolve returns, in order of preference: the pre-selected folder, the
// root_path setting, or the only workspace folder. With zero or several
// workspace folders it warns and asks for an existing path instead.
func (r *Resolver) Resolve(ctx context.Context, folder string, s config.Settings) (string, error) {
	if folder != "" {
		return folder, nil
	}
	if s.RootPath != nil && strings.TrimSpace(*s.RootPath) != "" {
		return *s.RootPath, nil
	}

	var warning *errors.ScaffoldError
	switch len(s.WorkspaceFolders) {
	case 1:
		return s.WorkspaceFolders[0], nil
	case 0:
		warning = errors.New(errors.KindNoWorkspaceFound, "")
	default:
		warning = errors.New(errors.KindMultipleWorkspacesFound, strings.Join(s.WorkspaceFolders, ", "))
	}
	if r.notifier != nil {
		r.notifier.Notify(ctx, warning.Severity(), warning.Error())
	}

	return AskPath(ctx, r.prompter, r.fs, PromptRootFolder, true)
}

// AskPath prompts for a non-empty line. With checkExistence the answer must
// name an existing path. Cancellation counts as empty input.
func AskPath(ctx context.Context, prompter interfaces.Prompter, fs interfaces.FileSystem, placeholder string, checkExistence bool) (string, error) {
	answer, ok, err := prompter.Prompt(ctx, placeholder)
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(answer) == "" {
		return "", errors.ErrEmptyInput()
	}

	if checkExistence {
		exists, err := fs.Exists(answer)
		if err != nil {
			return "", errors.Wrap(errors.KindPathNotFound, answer, err)
		}
		if !exists {
			return "", errors.New(errors.KindPathNotFound, answer)
		}
	}

	return answer, nil
}
