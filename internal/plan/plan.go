// Package plan derives the file names, folders and cross-file import paths
// for one component from a resolved configuration and a parsed path.
//
// Build is a pure function. The Plan it returns is never mutated afterwards and
// may be shared freely between the content generator and concurrent file
// creation steps.
package plan

import (
	"path"
	"regexp"
	"strings"

	"github.com/conneroisu/rfs/internal/componentpath"
	"github.com/conneroisu/rfs/internal/config"
)

// Default base names.
const (
	DefaultName       = "index"
	DefaultStylesName = "styles"
	DefaultTypesName  = "types"
)

const (
	declarationSuffix = ".d.ts"
	typeSourceSuffix  = ".ts"
	testInfix         = ".test"
)

// Kind identifies one generated artifact.
type Kind string

const (
	KindComponent Kind = "component"
	KindStyles    Kind = "styles"
	KindTypes     Kind = "types"
	KindTest      Kind = "test"
	KindIndex     Kind = "index"
)

// Artifact is one file scheduled for creation.
type Artifact struct {
	Kind     Kind   `yaml:"kind"`
	FileName string `yaml:"file"`
	// Folder is the override sub-folder relative to the component directory.
	Folder string `yaml:"folder,omitempty"`
	// ImportPath is the artifact's location relative to the component
	// directory, always using "/".
	ImportPath string `yaml:"import_path"`
}

// Specifier is the module specifier used to import the artifact from a file
// in the component directory, e.g. "./styles/Button.module.css" or
// "./Button.d".
func (a Artifact) Specifier() string {
	return Specifier(a.ImportPath)
}

// Plan is the naming plan for one invocation.
type Plan struct {
	ComponentName string `yaml:"component_name"`
	// Folders are the segments to create under the root, in order.
	Folders   []string  `yaml:"folders"`
	Component Artifact  `yaml:"component"`
	Styles    *Artifact `yaml:"styles,omitempty"`
	Types     *Artifact `yaml:"types,omitempty"`
	Test      *Artifact `yaml:"test,omitempty"`
	Index     *Artifact `yaml:"index,omitempty"`
}

// Build computes the naming plan.
func Build(cfg config.Config, p componentpath.Path) Plan {
	folders, name := splitName(cfg.IndexMode, p)
	ext := string(cfg.ComponentExtension)

	pl := Plan{
		ComponentName: name,
		Folders:       folders,
		Component:     newArtifact(KindComponent, name+ext, ""),
	}

	if cfg.HasStyles() {
		base := firstNonEmpty(cfg.StylesFileName, name, DefaultStylesName)
		a := newArtifact(KindStyles, base+cfg.StylesExtension, cfg.StylesFolder)
		pl.Styles = &a
	}

	if cfg.TypesMode == config.TypesFile {
		base := firstNonEmpty(cfg.TypesFileName, name, DefaultTypesName)
		suffix := typeSourceSuffix
		if base == name {
			suffix = declarationSuffix
		}
		a := newArtifact(KindTypes, base+suffix, cfg.TypesFolder)
		pl.Types = &a
	}

	if cfg.TestsEnabled {
		a := newArtifact(KindTest, name+testInfix+ext, cfg.TestsFolder)
		pl.Test = &a
	}

	// a component already named index is its own barrel
	if cfg.IndexMode == config.IndexExports && name != DefaultName {
		a := newArtifact(KindIndex, DefaultName+ext, "")
		pl.Index = &a
	}

	return pl
}

// splitName returns the folders to create and the component's base name.
// When the component is the index file every non-empty segment is a folder;
// otherwise the last segment is popped as the name.
func splitName(mode config.IndexMode, p componentpath.Path) ([]string, string) {
	if mode == config.IndexComponent {
		return nonEmpty(p.Segments()), DefaultName
	}
	return nonEmpty(p.Folders()), firstNonEmpty(p.Base(), DefaultName)
}

func newArtifact(kind Kind, fileName, folder string) Artifact {
	importPath := fileName
	if folder != "" {
		importPath = folder + "/" + fileName
	}
	return Artifact{
		Kind:       kind,
		FileName:   fileName,
		Folder:     folder,
		ImportPath: importPath,
	}
}

// Artifacts returns every scheduled artifact in creation order.
func (p Plan) Artifacts() []Artifact {
	out := make([]Artifact, 0, 5)
	for _, a := range []*Artifact{p.Styles, p.Types, p.Test} {
		if a != nil {
			out = append(out, *a)
		}
	}
	out = append(out, p.Component)
	if p.Index != nil {
		out = append(out, *p.Index)
	}
	return out
}

// Directory returns the component directory relative to the root.
func (p Plan) Directory() string {
	return path.Join(p.Folders...)
}

// ComponentSpecifier is the specifier a file located in folder (relative to
// the component directory, "" for the directory itself) uses to import the
// component module. An index component is imported through its folder.
func (p Plan) ComponentSpecifier(folder string, componentIsIndex bool) string {
	prefix := "."
	if folder != "" {
		prefix = strings.TrimSuffix(strings.Repeat("../", strings.Count(folder, "/")+1), "/")
	}
	if componentIsIndex {
		return prefix
	}
	return prefix + "/" + p.ComponentName
}

var sourceExtRegExp = regexp.MustCompile(`\.(ts|tsx|js|jsx)$`)

// Specifier turns a relative file path into an import specifier, dropping
// source-file extensions that module resolution adds back.
func Specifier(relPath string) string {
	return "./" + sourceExtRegExp.ReplaceAllString(relPath, "")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
