// Package scaffolding produces the text of every generated file.
//
// Rendering is pure and deterministic: the same plan and configuration always
// yield byte-identical output. When templates are disabled every file is
// rendered empty, which turns rfs into a plain folder and file scaffolder.
package scaffolding

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/conneroisu/rfs/internal/config"
	"github.com/conneroisu/rfs/internal/plan"
)

// File is an artifact together with its rendered content.
type File struct {
	plan.Artifact
	Content string
}

// Render produces the content of every scheduled artifact, in the plan's
// creation order.
func Render(p plan.Plan, cfg config.Config) ([]File, error) {
	artifacts := p.Artifacts()
	files := make([]File, 0, len(artifacts))

	for _, a := range artifacts {
		content := ""
		if cfg.UseTemplates {
			var err error
			content, err = renderArtifact(a, p, cfg)
			if err != nil {
				return nil, fmt.Errorf("failed to render %s file %s: %w", a.Kind, a.FileName, err)
			}
		}
		files = append(files, File{Artifact: a, Content: content})
	}

	return files, nil
}

func renderArtifact(a plan.Artifact, p plan.Plan, cfg config.Config) (string, error) {
	switch a.Kind {
	case plan.KindComponent:
		return ComponentContent(p, cfg)
	case plan.KindStyles:
		return StylesContent(), nil
	case plan.KindTypes:
		return TypesContent(p)
	case plan.KindTest:
		return TestContent(p, cfg)
	case plan.KindIndex:
		return IndexContent(p, cfg)
	}
	return "", fmt.Errorf("unknown artifact kind %q", a.Kind)
}

func newContext(p plan.Plan, cfg config.Config) templateContext {
	return templateContext{
		Name:    p.ComponentName,
		Arrow:   cfg.ExportStyle.IsArrow(),
		Default: cfg.ExportStyle.IsDefault(),
		Typed:   cfg.TypesMode != config.TypesNone,
	}
}

// ComponentContent renders the component module.
func ComponentContent(p plan.Plan, cfg config.Config) (string, error) {
	ctx := newContext(p, cfg)
	if p.Styles != nil {
		ctx.StylesSpecifier = p.Styles.Specifier()
	}
	switch cfg.TypesMode {
	case config.TypesFile:
		if p.Types != nil {
			ctx.TypesSpecifier = p.Types.Specifier()
		}
	case config.TypesInline:
		ctx.InlineTypes = true
	}

	out, err := execute(componentTmpl, ctx)
	if err != nil {
		return "", err
	}
	return collapseBlankLines(out), nil
}

// StylesContent is always empty; stylesheets are written by hand.
func StylesContent() string {
	return ""
}

// TypesContent renders the separate props declaration.
func TypesContent(p plan.Plan) (string, error) {
	return execute(typesTmpl, templateContext{Name: p.ComponentName})
}

// TestContent renders the test skeleton importing the component.
func TestContent(p plan.Plan, cfg config.Config) (string, error) {
	ctx := newContext(p, cfg)
	folder := ""
	if p.Test != nil {
		folder = p.Test.Folder
	}
	ctx.ComponentSpecifier = p.ComponentSpecifier(folder, cfg.IndexMode == config.IndexComponent)
	return execute(testTmpl, ctx)
}

// IndexContent renders the barrel file's single re-export.
func IndexContent(p plan.Plan, cfg config.Config) (string, error) {
	ctx := newContext(p, cfg)
	ctx.ComponentSpecifier = p.ComponentSpecifier("", false)
	return execute(indexTmpl, ctx)
}

func execute(tmpl *template.Template, ctx templateContext) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, ctx); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

var blankRunRegExp = regexp.MustCompile(`\n{3,}`)

func collapseBlankLines(s string) string {
	return blankRunRegExp.ReplaceAllString(s, "\n\n")
}
