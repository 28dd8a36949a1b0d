package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/rfs/internal/errors"
)

func TestParseOption(t *testing.T) {
	tests := []struct {
		token string
		want  Option
		ok    bool
	}{
		{"e=JSX", Option{Key: "e", Value: "JSX"}, true},
		{"I+", Option{Key: "i", Sign: '+'}, true},
		{"qa-", Option{Key: "qa", Sign: '-'}, true},
		{"sn=", Option{Key: "sn"}, true},
		{"user/profile", Option{}, false},
		{"e=a=b", Option{}, false},
		{"=x", Option{}, false},
		{"e1=x", Option{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseOption(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "e=JSX", Option{Key: "e", Value: "JSX"}.String())
	assert.Equal(t, "t+", Option{Key: "t", Sign: '+'}.String())
}

func TestSplitOptions(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantOpts []string
		wantPath string
	}{
		{"bare path", "user/profile", nil, "user/profile"},
		{"options then path", "e=JSX s- user/profile", []string{"e=JSX", "s-"}, "user/profile"},
		{"commas", "e=JSX,i+,t=INLINE shared/Button", []string{"e=JSX", "i+", "t=INLINE"}, "shared/Button"},
		{"path keeps interior spaces", "qa+ my comp/Item", []string{"qa+"}, "my comp/Item"},
		{"last token is always the path", "i+", nil, "i+"},
		{"option after path start", "user e=JSX profile", nil, "user e=JSX profile"},
		{"surrounding whitespace", "  h-   a/b ", []string{"h-"}, "a/b "},
		{"empty", "   ", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, path := SplitOptions(tt.line)
			var got []string
			for _, o := range opts {
				got = append(got, o.String())
			}
			assert.Equal(t, tt.wantOpts, got)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestWithOptions(t *testing.T) {
	parse := func(line string) []Option {
		opts, _ := SplitOptions(line + " x")
		return opts
	}

	tests := []struct {
		name  string
		base  Config
		line  string
		check func(t *testing.T, cfg Config)
	}{
		{
			name: "extension and styles",
			base: Defaults(),
			line: "e=JSX s=SCSS",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, ExtensionJSX, cfg.ComponentExtension)
				assert.Equal(t, ".scss", cfg.StylesExtension)
				assert.Equal(t, TypesNone, cfg.TypesMode, "JSX has no types")
			},
		},
		{
			name: "toggles",
			base: Defaults(),
			line: "i+ t- qa+ h- s-",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, IndexExports, cfg.IndexMode)
				assert.Equal(t, TypesNone, cfg.TypesMode)
				assert.True(t, cfg.TestsEnabled)
				assert.False(t, cfg.UseTemplates)
				assert.False(t, cfg.HasStyles())
			},
		},
		{
			name: "named values",
			base: Defaults(),
			line: "f=dd i=COMPONENT t=INLINE qa=true",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, ExportFunctionDefault, cfg.ExportStyle)
				assert.Equal(t, IndexComponent, cfg.IndexMode)
				assert.Equal(t, TypesInline, cfg.TypesMode)
				assert.True(t, cfg.TestsEnabled)
			},
		},
		{
			name: "names and folders",
			base: Defaults(),
			line: "sn=theme sf=css tn=props tf=types qf=__tests__",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "theme", cfg.StylesFileName)
				assert.Equal(t, "css", cfg.StylesFolder)
				assert.Equal(t, "props", cfg.TypesFileName)
				assert.Equal(t, "types", cfg.TypesFolder)
				assert.Equal(t, "__tests__", cfg.TestsFolder)
			},
		},
		{
			name: "unset overrides",
			base: Config{StylesFolder: "css", TestsFolder: "t", ComponentExtension: ExtensionTSX},
			line: "sf- qf=",
			check: func(t *testing.T, cfg Config) {
				assert.Empty(t, cfg.StylesFolder)
				assert.Empty(t, cfg.TestsFolder)
			},
		},
		{
			name: "unknown keys and values are ignored",
			base: Defaults(),
			line: "zz=1 e=COBOL f=XX i=maybe",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, Defaults(), cfg)
			},
		},
		{
			name: "later tokens win",
			base: Defaults(),
			line: "e=JS e=TSX",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, ExtensionTSX, cfg.ComponentExtension)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.base.WithOptions(parse(tt.line))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestWithOptionsDoesNotMutateReceiver(t *testing.T) {
	base := Defaults()
	_, err := base.WithOptions([]Option{{Key: "e", Value: "JS"}})
	require.NoError(t, err)
	assert.Equal(t, Defaults(), base)
}

func TestWithOptionsValidation(t *testing.T) {
	tests := []struct {
		line string
		kind errors.Kind
	}{
		{"sf=a.. x", ""},
		{"sf=... x", errors.KindInvalidFolderName},
		{"tn=--- x", errors.KindInvalidFileName},
		{"s=styl x", errors.KindInvalidStylesExtension},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			opts, _ := SplitOptions(tt.line)
			_, err := Defaults().WithOptions(opts)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.kind, errors.KindOf(err))
		})
	}
}
