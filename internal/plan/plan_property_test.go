//go:build property

package plan

import (
	"path"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/conneroisu/rfs/internal/componentpath"
	"github.com/conneroisu/rfs/internal/config"
)

type planInput struct {
	Ext     string
	Index   string
	Styles  string
	Types   string
	Tests   bool
	Folders []string
	Name    string
	// Override is used as the styles, types and tests folder when non-empty.
	Override string
}

func genPlanInput() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("JS", "JSX", "TSX"),
		gen.OneConstOf("NONE", "COMPONENT", "EXPORTS"),
		gen.OneConstOf("NONE", "CSS", "SCSS", "CSS_MODULES"),
		gen.OneConstOf("NONE", "INLINE", "FILE"),
		gen.Bool(),
		gen.SliceOfN(3, gen.Identifier()),
		gen.Identifier(),
		gen.OneConstOf("", "styles", "__tests__", "shared"),
	).Map(func(values []interface{}) planInput {
		return planInput{
			Ext:     values[0].(string),
			Index:   values[1].(string),
			Styles:  values[2].(string),
			Types:   values[3].(string),
			Tests:   values[4].(bool),
			Folders: values[5].([]string),
			Name:     values[6].(string),
			Override: values[7].(string),
		}
	})
}

func (in planInput) build() (Plan, config.Config, error) {
	settings := config.Settings{
		ComponentExtension: &in.Ext,
		IndexMode:          &in.Index,
		StylesExtension:    &in.Styles,
		TypesMode:          &in.Types,
		TestsEnabled:       &in.Tests,
	}
	if in.Override != "" {
		settings.StylesFolder = &in.Override
		settings.TypesFolder = &in.Override
		settings.TestsFolder = &in.Override
	}
	cfg, err := config.Resolve(settings, "/root")
	if err != nil {
		return Plan{}, cfg, err
	}
	raw := strings.Join(append(append([]string(nil), in.Folders...), in.Name), "/")
	p, err := componentpath.Parse(raw)
	if err != nil {
		return Plan{}, cfg, err
	}
	return Build(cfg, p), cfg, nil
}

// TestPlanProperties validates that artifacts are present exactly when scheduled
func TestPlanProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4321)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("artifact presence follows the configuration", prop.ForAll(
		func(in planInput) bool {
			p, cfg, err := in.build()
			if err != nil {
				return false
			}
			return (p.Styles != nil) == cfg.HasStyles() &&
				(p.Types != nil) == (cfg.TypesMode == config.TypesFile) &&
				(p.Test != nil) == cfg.TestsEnabled &&
				(p.Index != nil) == (cfg.IndexMode == config.IndexExports && p.ComponentName != DefaultName)
		},
		genPlanInput(),
	))

	properties.Property("types files only exist for tsx", prop.ForAll(
		func(in planInput) bool {
			p, cfg, err := in.build()
			if err != nil {
				return false
			}
			return p.Types == nil || cfg.ComponentExtension == config.ExtensionTSX
		},
		genPlanInput(),
	))

	properties.Property("every file carries the component extension or its own", prop.ForAll(
		func(in planInput) bool {
			p, cfg, err := in.build()
			if err != nil {
				return false
			}
			ext := string(cfg.ComponentExtension)
			if !strings.HasSuffix(p.Component.FileName, ext) {
				return false
			}
			if p.Test != nil && !strings.HasSuffix(p.Test.FileName, ".test"+ext) {
				return false
			}
			return p.Styles == nil || strings.HasSuffix(p.Styles.FileName, cfg.StylesExtension)
		},
		genPlanInput(),
	))

	properties.Property("component name and folders come from the path", prop.ForAll(
		func(in planInput) bool {
			p, cfg, err := in.build()
			if err != nil {
				return false
			}
			if cfg.IndexMode == config.IndexComponent {
				return p.ComponentName == DefaultName && len(p.Folders) == len(in.Folders)+1
			}
			return p.ComponentName == in.Name && len(p.Folders) == len(in.Folders)
		},
		genPlanInput(),
	))

	properties.Property("specifiers resolve back to the artifact files", prop.ForAll(
		func(in planInput) bool {
			p, _, err := in.build()
			if err != nil {
				return false
			}
			dir := p.Directory()
			for _, a := range p.Artifacts() {
				if in.Override != "" && a.Kind != KindComponent && a.Kind != KindIndex && a.Folder != in.Override {
					return false
				}
				resolved := path.Join(dir, a.Specifier()) + sourceExtRegExp.FindString(a.ImportPath)
				if resolved != path.Join(dir, a.ImportPath) {
					return false
				}
			}
			return true
		},
		genPlanInput(),
	))

	properties.TestingRun(t)
}
