// Package structure materializes a rendered component on a filesystem.
//
// Folders are created first, one segment at a time, each step finishing
// before the next starts. Once the component directory exists every file is
// created concurrently. Existing files are never overwritten: they are
// reported as FileAlreadyExists and the run carries on.
package structure

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/conneroisu/rfs/internal/errors"
	"github.com/conneroisu/rfs/internal/interfaces"
	"github.com/conneroisu/rfs/internal/logging"
	"github.com/conneroisu/rfs/internal/scaffolding"
)

// Result summarizes one materialization.
type Result struct {
	// Directory is the component directory.
	Directory string
	// Created lists the files written, sorted.
	Created []string
	// Existing lists scheduled files that were already present, sorted.
	Existing []string
	// Failed holds file-level failures other than FileAlreadyExists.
	Failed []error
}

// Materializer creates folder trees and files.
type Materializer struct {
	fs       interfaces.FileSystem
	notifier interfaces.Notifier
	logger   logging.Logger
}

// NewMaterializer creates a materializer. notifier and logger may be nil.
func NewMaterializer(fsys interfaces.FileSystem, notifier interfaces.Notifier, logger logging.Logger) *Materializer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Materializer{
		fs:       fsys,
		notifier: notifier,
		logger:   logger.WithComponent("structure"),
	}
}

// Materialize creates root/folders... and then every file beneath it. A
// directory creation failure aborts the run before any file is attempted.
// File-level failures are collected in the result and joined into the
// returned error for the caller to surface; FileAlreadyExists is reported
// through the notifier as it happens and never returned.
func (m *Materializer) Materialize(ctx context.Context, root string, folders []string, files []scaffolding.File) (*Result, error) {
	dir, err := m.EnsureFolders(ctx, root, folders)
	if err != nil {
		return nil, err
	}

	res := &Result{Directory: dir}
	failures := errors.NewErrorCollector()
	var mu sync.Mutex
	// no derived context: a failing file never cancels its siblings
	var g errgroup.Group

	var duplicates []string
	scheduled := make(map[string]bool, len(files))
	for _, f := range files {
		target := filepath.Join(dir, filepath.FromSlash(f.ImportPath))
		if scheduled[target] {
			// two artifacts resolved to the same file; the first one wins
			m.reportExisting(ctx, target)
			duplicates = append(duplicates, target)
			continue
		}
		scheduled[target] = true

		f := f
		g.Go(func() error {
			created, err := m.createFile(ctx, dir, f)
			if err != nil {
				failures.AddError(err)
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			if created {
				res.Created = append(res.Created, target)
			} else {
				res.Existing = append(res.Existing, target)
			}
			return nil
		})
	}
	// Wait keeps only the first error; the collector holds all of them.
	waitErr := g.Wait()

	res.Existing = append(res.Existing, duplicates...)
	sort.Strings(res.Created)
	sort.Strings(res.Existing)
	res.Failed = failures.GetAllErrors()

	if waitErr == nil {
		return res, nil
	}
	return res, failures.Err()
}

// EnsureFolders creates each segment under root in order, skipping segments
// that already exist, and returns the deepest path.
func (m *Materializer) EnsureFolders(ctx context.Context, root string, folders []string) (string, error) {
	current := root
	for _, segment := range folders {
		if segment == "" {
			continue
		}
		current = filepath.Join(current, segment)

		exists, err := m.fs.Exists(current)
		if err != nil {
			return "", errors.ErrDirectoryCreationFailed(current, err)
		}
		if exists {
			continue
		}

		if err := m.fs.CreateDirectory(current); err != nil {
			// a concurrent creator got there first
			if stderrors.Is(err, fs.ErrExist) {
				continue
			}
			return "", errors.ErrDirectoryCreationFailed(current, err)
		}
		m.logger.Debug(ctx, "Created folder", "path", current)
	}
	return current, nil
}

// createFile writes one file. created is false when the file already existed.
func (m *Materializer) createFile(ctx context.Context, dir string, f scaffolding.File) (bool, error) {
	parent := dir
	if f.Folder != "" {
		var err error
		parent, err = m.EnsureFolders(ctx, dir, []string{f.Folder})
		if err != nil {
			return false, err
		}
	}
	target := filepath.Join(parent, f.FileName)

	exists, err := m.fs.Exists(target)
	if err != nil {
		return false, errors.ErrFileCreationFailed(target, err)
	}
	if exists {
		m.reportExisting(ctx, target)
		return false, nil
	}

	if err := m.fs.CreateFile(target, f.Content); err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			m.reportExisting(ctx, target)
			return false, nil
		}
		return false, errors.ErrFileCreationFailed(target, err)
	}

	m.logger.Info(ctx, "Created file", "path", target, "kind", string(f.Kind))
	return true, nil
}

func (m *Materializer) reportExisting(ctx context.Context, target string) {
	err := errors.ErrFileAlreadyExists(target)
	m.logger.Warn(ctx, err, "Skipped existing file", "path", target)
	if m.notifier != nil {
		m.notifier.Notify(ctx, err.Severity(), err.Error())
	}
}
