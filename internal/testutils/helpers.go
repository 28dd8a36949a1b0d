// Package testutils provides shared test doubles for the rfs packages.
package testutils

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/rfs/internal/adapters"
	"github.com/conneroisu/rfs/internal/errors"
	"github.com/conneroisu/rfs/internal/interfaces"
)

// Notification is one recorded message.
type Notification struct {
	Severity errors.Severity
	Message  string
}

// RecordingNotifier keeps every notification it receives.
type RecordingNotifier struct {
	mu    sync.Mutex
	items []Notification
}

func (n *RecordingNotifier) Notify(_ context.Context, severity errors.Severity, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, Notification{Severity: severity, Message: message})
}

// All returns a copy of the recorded notifications.
func (n *RecordingNotifier) All() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.items...)
}

// BySeverity returns the messages recorded with severity.
func (n *RecordingNotifier) BySeverity(severity errors.Severity) []string {
	var out []string
	for _, item := range n.All() {
		if item.Severity == severity {
			out = append(out, item.Message)
		}
	}
	return out
}

// ScriptedPrompter answers prompts from a fixed list. Once the list is
// exhausted every prompt is cancelled.
type ScriptedPrompter struct {
	mu           sync.Mutex
	Answers      []string
	Placeholders []string
}

// NewScriptedPrompter creates a prompter returning answers in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

func (p *ScriptedPrompter) Prompt(_ context.Context, placeholder string) (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Placeholders = append(p.Placeholders, placeholder)
	if len(p.Answers) == 0 {
		return "", false, nil
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, true, nil
}

// MapSettings is an in-memory settings store keyed like .rfs.yml.
type MapSettings map[string]any

func (m MapSettings) IsSet(key string) bool {
	_, ok := m[key]
	return ok
}

func (m MapSettings) GetString(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func (m MapSettings) GetBool(key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}

func (m MapSettings) GetStringSlice(key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	default:
		return nil
	}
}

// NewMemFileSystem returns an in-memory filesystem and its backing afero.Fs.
func NewMemFileSystem() (interfaces.FileSystem, afero.Fs) {
	mem := afero.NewMemMapFs()
	return adapters.NewAferoFileSystem(mem), mem
}

// FailingFileSystem wraps a FileSystem and fails operations on chosen paths.
type FailingFileSystem struct {
	interfaces.FileSystem
	// FailDirs and FailFiles map a path base name to the error returned.
	FailDirs  map[string]error
	FailFiles map[string]error
}

func (f *FailingFileSystem) CreateDirectory(path string) error {
	if err, ok := f.FailDirs[filepath.Base(path)]; ok {
		return err
	}
	return f.FileSystem.CreateDirectory(path)
}

func (f *FailingFileSystem) CreateFile(path, text string) error {
	if err, ok := f.FailFiles[filepath.Base(path)]; ok {
		return err
	}
	return f.FileSystem.CreateFile(path, text)
}

// ErrPermission is a convenience failure for FailingFileSystem.
var ErrPermission = &fs.PathError{Op: "open", Path: "denied", Err: fs.ErrPermission}

// ReadFile returns the content of path in fsys.
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// ListFiles returns every regular file under root, relative and slash-separated.
func ListFiles(t *testing.T, fsys afero.Fs, root string) []string {
	t.Helper()
	var files []string
	err := afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	return files
}
