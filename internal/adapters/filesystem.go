package adapters

import (
	"os"

	"github.com/spf13/afero"

	"github.com/conneroisu/rfs/internal/interfaces"
)

// AferoFileSystem adapts an afero.Fs to the interfaces.FileSystem contract.
type AferoFileSystem struct {
	fs       afero.Fs
	dirMode  os.FileMode
	fileMode os.FileMode
}

// NewAferoFileSystem wraps fs.
func NewAferoFileSystem(fs afero.Fs) interfaces.FileSystem {
	return &AferoFileSystem{fs: fs, dirMode: 0o755, fileMode: 0o644}
}

// NewOSFileSystem returns the real filesystem.
func NewOSFileSystem() interfaces.FileSystem {
	return NewAferoFileSystem(afero.NewOsFs())
}

func (a *AferoFileSystem) Exists(path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

func (a *AferoFileSystem) CreateDirectory(path string) error {
	return a.fs.Mkdir(path, a.dirMode)
}

func (a *AferoFileSystem) CreateFile(path, text string) error {
	f, err := a.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL|os.O_APPEND, a.fileMode)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
