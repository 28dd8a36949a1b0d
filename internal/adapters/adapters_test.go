package adapters

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/rfs/internal/config"
	"github.com/conneroisu/rfs/internal/errors"
)

func TestViperSettings(t *testing.T) {
	v := viper.New()
	v.Set(config.KeyIndexMode, "EXPORTS")

	s := config.LoadSettings(NewViperSettings(v))
	require.NotNil(t, s.IndexMode)
	assert.Equal(t, "EXPORTS", *s.IndexMode)

	assert.Same(t, viper.GetViper(), NewViperSettings(nil))
}

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOSFileSystem()

	sub := filepath.Join(dir, "user")
	exists, err := fsys.Exists(sub)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, fsys.CreateDirectory(sub))
	assert.ErrorIs(t, fsys.CreateDirectory(sub), fs.ErrExist)

	target := filepath.Join(sub, "profile.tsx")
	require.NoError(t, fsys.CreateFile(target, "content"))
	assert.ErrorIs(t, fsys.CreateFile(target, "other"), fs.ErrExist)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestMemFileSystemCreateIsExclusive(t *testing.T) {
	mem := afero.NewMemMapFs()
	fsys := NewAferoFileSystem(mem)

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fsys.CreateFile("/race.txt", "x"); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestLinePrompter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		answer string
		ok     bool
	}{
		{"line", "user/profile\n", "user/profile", true},
		{"crlf", "user/profile\r\n", "user/profile", true},
		{"no trailing newline", "last", "last", true},
		{"empty line", "\n", "", true},
		{"end of input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)

			answer, ok, err := p.Prompt(context.Background(), "Enter path")
			require.NoError(t, err)
			assert.Equal(t, tt.answer, answer)
			assert.Equal(t, tt.ok, ok)
			assert.Contains(t, out.String(), "Enter path")
		})
	}
}

func TestLinePrompterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewLinePrompter(strings.NewReader("x\n"), &bytes.Buffer{})
	_, ok, err := p.Prompt(ctx, "Enter path")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

func TestConsoleNotifier(t *testing.T) {
	var out bytes.Buffer
	n := NewConsoleNotifier(&out)

	n.Notify(context.Background(), errors.SeverityWarning, "File a.tsx already exists.")
	n.Notify(context.Background(), errors.SeverityError, "Input is empty.")
	n.Notify(context.Background(), errors.SeverityInfo, "Created 1 file(s)")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "warning: File a.tsx already exists.", lines[0])
	assert.Equal(t, "error: Input is empty.", lines[1])
	assert.Equal(t, "info: Created 1 file(s)", lines[2])
}
