// Package config resolves the scaffolding configuration for one rfs
// invocation.
//
// Persisted settings are read through a key-value SettingsReader (viper in
// production), every unset field receives its documented default, inline
// option tokens may override fields for a single run, and the result is
// validated and made consistent before it is handed to the planner. A resolved
// Config is a plain value: callers receive copies and never share mutations.
package config

// Settings keys, as they appear in .rfs.yml and (upper-cased, with "." replaced
// by "_" and an RFS_ prefix) in the environment.
const (
	KeyComponentExtension = "component.extension"
	KeyExportStyle        = "component.export"
	KeyIndexMode          = "component.index"
	KeyStylesExtension    = "styles.extension"
	KeyStylesFileName     = "styles.name"
	KeyStylesFolder       = "styles.folder"
	KeyTypesMode          = "types.mode"
	KeyTypesFileName      = "types.name"
	KeyTypesFolder        = "types.folder"
	KeyTestsEnabled       = "tests.enabled"
	KeyTestsFolder        = "tests.folder"
	KeyRootPath           = "root_path"
	KeyUseTemplates       = "use_templates"
	KeyWorkspaceFolders   = "workspace.folders"
)

// SettingsReader is the persisted key-value store. *viper.Viper satisfies it.
type SettingsReader interface {
	IsSet(key string) bool
	GetString(key string) string
	GetBool(key string) bool
	GetStringSlice(key string) []string
}

// Settings is the persisted settings record. Nil fields are unset.
type Settings struct {
	ComponentExtension *string
	ExportStyle        *string
	IndexMode          *string
	StylesExtension    *string
	StylesFileName     *string
	StylesFolder       *string
	TypesMode          *string
	TypesFileName      *string
	TypesFolder        *string
	TestsEnabled       *bool
	TestsFolder        *string
	RootPath           *string
	UseTemplates       *bool
	WorkspaceFolders   []string
}

// Config is the resolved configuration for one invocation.
type Config struct {
	ComponentExtension Extension   `yaml:"component_extension"`
	ExportStyle        ExportStyle `yaml:"export_style"`
	IndexMode          IndexMode   `yaml:"index_mode"`
	// StylesExtension is empty when no styles file is generated.
	StylesExtension string    `yaml:"styles_extension,omitempty"`
	StylesFileName  string    `yaml:"styles_file_name,omitempty"`
	StylesFolder    string    `yaml:"styles_folder,omitempty"`
	TypesMode       TypesMode `yaml:"types_mode"`
	TypesFileName   string    `yaml:"types_file_name,omitempty"`
	TypesFolder     string    `yaml:"types_folder,omitempty"`
	TestsEnabled    bool      `yaml:"tests_enabled"`
	TestsFolder     string    `yaml:"tests_folder,omitempty"`
	RootPath        string    `yaml:"root_path"`
	UseTemplates    bool      `yaml:"use_templates"`
}

// Defaults returns the configuration used for every unset setting.
func Defaults() Config {
	return Config{
		ComponentExtension: ExtensionTSX,
		ExportStyle:        ExportArrowDefault,
		IndexMode:          IndexNone,
		StylesExtension:    ".module.css",
		TypesMode:          TypesFile,
		TestsEnabled:       false,
		UseTemplates:       true,
	}
}

// LoadSettings reads every known key from reader.
func LoadSettings(reader SettingsReader) Settings {
	str := func(key string) *string {
		if !reader.IsSet(key) {
			return nil
		}
		v := reader.GetString(key)
		return &v
	}
	boolean := func(key string) *bool {
		if !reader.IsSet(key) {
			return nil
		}
		v := reader.GetBool(key)
		return &v
	}

	s := Settings{
		ComponentExtension: str(KeyComponentExtension),
		ExportStyle:        str(KeyExportStyle),
		IndexMode:          str(KeyIndexMode),
		StylesExtension:    str(KeyStylesExtension),
		StylesFileName:     str(KeyStylesFileName),
		StylesFolder:       str(KeyStylesFolder),
		TypesMode:          str(KeyTypesMode),
		TypesFileName:      str(KeyTypesFileName),
		TypesFolder:        str(KeyTypesFolder),
		TestsEnabled:       boolean(KeyTestsEnabled),
		TestsFolder:        str(KeyTestsFolder),
		RootPath:           str(KeyRootPath),
		UseTemplates:       boolean(KeyUseTemplates),
	}
	if reader.IsSet(KeyWorkspaceFolders) {
		s.WorkspaceFolders = reader.GetStringSlice(KeyWorkspaceFolders)
	}

	return s
}

// Resolve applies settings over the defaults, sets the root path, validates
// the result and enforces consistency.
func Resolve(s Settings, rootPath string) (Config, error) {
	cfg := Defaults()

	if s.ComponentExtension != nil {
		if ext, ok := ParseExtension(*s.ComponentExtension); ok {
			cfg.ComponentExtension = ext
		}
	}
	if s.ExportStyle != nil {
		if style, ok := ParseExportStyle(*s.ExportStyle); ok {
			cfg.ExportStyle = style
		}
	}
	if s.IndexMode != nil {
		if mode, ok := ParseIndexMode(*s.IndexMode); ok {
			cfg.IndexMode = mode
		}
	}
	if s.StylesExtension != nil {
		cfg.StylesExtension, _ = ParseStylesExtension(*s.StylesExtension)
	}
	if s.TypesMode != nil {
		if mode, ok := ParseTypesMode(*s.TypesMode); ok {
			cfg.TypesMode = mode
		}
	}
	if s.TestsEnabled != nil {
		cfg.TestsEnabled = *s.TestsEnabled
	}
	if s.UseTemplates != nil {
		cfg.UseTemplates = *s.UseTemplates
	}
	cfg.StylesFileName = deref(s.StylesFileName)
	cfg.StylesFolder = deref(s.StylesFolder)
	cfg.TypesFileName = deref(s.TypesFileName)
	cfg.TypesFolder = deref(s.TypesFolder)
	cfg.TestsFolder = deref(s.TestsFolder)
	cfg.RootPath = rootPath

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg.Consistent(), nil
}

// Consistent returns a copy of c with the type mode switched off when the
// component extension has no type system.
func (c Config) Consistent() Config {
	if !c.ComponentExtension.SupportsTypes() {
		c.TypesMode = TypesNone
	}
	return c
}

// HasStyles reports whether a styles file is configured.
func (c Config) HasStyles() bool {
	return c.StylesExtension != ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
