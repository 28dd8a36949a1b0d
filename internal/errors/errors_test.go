package errors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		subject string
		want    string
	}{
		{"empty input", KindEmptyInput, "", "Input is empty."},
		{"folder field", KindInvalidFolderName, "styles", `Invalid styles folder name. Expected letters, numbers, ".", "_", "-" symbols.`},
		{"file field", KindInvalidFileName, "types", `Invalid types file name. Expected letters, numbers, ".", "_", "-" symbols.`},
		{"quoted path", KindInvalidComponentPath, "a*b", `Invalid component path "a*b". Expected letters, numbers, spaces, "_", "-", "\", "/" symbols.`},
		{"existing file", KindFileAlreadyExists, "/x/Button.tsx", "File /x/Button.tsx already exists."},
		{"unknown kind", Kind("bogus"), "x", "Unexpected error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.kind, tt.subject))
		})
	}
}

func TestScaffoldError(t *testing.T) {
	t.Run("error with cause", func(t *testing.T) {
		err := ErrDirectoryCreationFailed("/root/user", fs.ErrPermission)
		assert.Equal(t, "Can not create folder /root/user: permission denied", err.Error())
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.Equal(t, SeverityError, err.Severity())
	})

	t.Run("is matches on kind", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", ErrFileAlreadyExists("/a"))
		assert.ErrorIs(t, wrapped, New(KindFileAlreadyExists, ""))
		assert.NotErrorIs(t, wrapped, New(KindEmptyInput, ""))
	})

	t.Run("kind of foreign error", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
		assert.Equal(t, KindEmptyInput, KindOf(ErrEmptyInput()))
		assert.Equal(t, KindInvalidFileName, KindOf(ErrInvalidFileName("styles")))
	})

	t.Run("recoverable kinds", func(t *testing.T) {
		assert.True(t, IsRecoverable(New(KindNoWorkspaceFound, "")))
		assert.True(t, IsRecoverable(ErrFileAlreadyExists("/a")))
		assert.False(t, IsRecoverable(ErrEmptyInput()))
		assert.False(t, IsRecoverable(errors.New("boom")))
	})

	t.Run("warnings", func(t *testing.T) {
		assert.Equal(t, SeverityWarning, New(KindMultipleWorkspacesFound, "").Severity())
		assert.Equal(t, SeverityWarning, ErrFileAlreadyExists("/a").Severity())
		assert.Equal(t, SeverityError, ErrInvalidStylesExtension("css").Severity())
	})
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

type recordingLogger struct {
	warns, errs int
}

func (l *recordingLogger) Error(context.Context, error, string, ...interface{}) { l.errs++ }
func (l *recordingLogger) Warn(context.Context, error, string, ...interface{})  { l.warns++ }

type message struct {
	severity Severity
	text     string
}

type recordingNotifier struct {
	messages []message
}

func (n *recordingNotifier) Notify(_ context.Context, severity Severity, text string) {
	n.messages = append(n.messages, message{severity, text})
}

func TestErrorHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("error is notified once", func(t *testing.T) {
		logger := &recordingLogger{}
		notifier := &recordingNotifier{}
		NewErrorHandler(logger, notifier).Handle(ctx, ErrInvalidFolderName("test"))

		require.Len(t, notifier.messages, 1)
		assert.Equal(t, SeverityError, notifier.messages[0].severity)
		assert.Contains(t, notifier.messages[0].text, "Invalid test folder name")
		assert.Equal(t, 1, logger.errs)
		assert.Zero(t, logger.warns)
	})

	t.Run("warning kinds log at warn", func(t *testing.T) {
		logger := &recordingLogger{}
		notifier := &recordingNotifier{}
		NewErrorHandler(logger, notifier).Handle(ctx, New(KindNoWorkspaceFound, ""))

		require.Len(t, notifier.messages, 1)
		assert.Equal(t, SeverityWarning, notifier.messages[0].severity)
		assert.Equal(t, 1, logger.warns)
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		notifier := &recordingNotifier{}
		NewErrorHandler(nil, notifier).Handle(ctx, nil)
		assert.Empty(t, notifier.messages)
	})

	t.Run("foreign errors are errors", func(t *testing.T) {
		notifier := &recordingNotifier{}
		NewErrorHandler(nil, notifier).Handle(ctx, errors.New("disk on fire"))
		require.Len(t, notifier.messages, 1)
		assert.Equal(t, SeverityError, notifier.messages[0].severity)
	})
}

func TestErrorCollector(t *testing.T) {
	collector := NewErrorCollector()
	assert.NoError(t, collector.Err())
	assert.Empty(t, collector.GetAllErrors())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			collector.AddError(ErrFileCreationFailed(fmt.Sprintf("/f%d", i), fs.ErrPermission))
			collector.AddError(nil)
		}(i)
	}
	wg.Wait()

	all := collector.GetAllErrors()
	require.Len(t, all, 10)
	require.Error(t, collector.Err())
	assert.Contains(t, all[0].Error(), "/f0")
	assert.Equal(t, KindFileCreationFailed, KindOf(collector.Err()))
	assert.ErrorIs(t, collector.Err(), fs.ErrPermission)
}
