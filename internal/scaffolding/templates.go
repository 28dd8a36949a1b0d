package scaffolding

import "text/template"

// componentTemplate renders the component module. Optional blocks carry their
// own leading blank line; blank-line runs are collapsed after rendering.
const componentTemplate = `import React from 'react';
{{- if .StylesSpecifier}}

import styles from '{{.StylesSpecifier}}';
{{- end}}
{{- if .TypesSpecifier}}

import { {{.Name}}Props } from '{{.TypesSpecifier}}';
{{- end}}
{{- if .InlineTypes}}

export interface {{.Name}}Props {}
{{- end}}

{{if .Arrow -}}
{{if not .Default}}export {{end}}const {{.Name}}{{if .Typed}}: React.FC<{{.Name}}Props>{{end}} = () => {
  return <div />;
};
{{- if .Default}}

export default {{.Name}};
{{- end}}
{{- else -}}
export {{if .Default}}default {{end}}function {{.Name}}({{if .Typed}}props: {{.Name}}Props{{end}}){{if .Typed}}: ReturnType<React.FC>{{end}} {
  return <div />;
}
{{- end}}`

const typesTemplate = `export interface {{.Name}}Props {}`

const testTemplate = `import {{if .Default}}{{.Name}}{{else}}{ {{.Name}} }{{end}} from '{{.ComponentSpecifier}}';

describe('{{.Name}}', () => {
  it('renders', () => {});
});`

const indexTemplate = `export {{if .Default}}{ default as {{.Name}} }{{else}}{ {{.Name}} }{{end}} from '{{.ComponentSpecifier}}';`

var (
	componentTmpl = template.Must(template.New("component").Parse(componentTemplate))
	typesTmpl     = template.Must(template.New("types").Parse(typesTemplate))
	testTmpl      = template.Must(template.New("test").Parse(testTemplate))
	indexTmpl     = template.Must(template.New("index").Parse(indexTemplate))
)

// templateContext is the data every template is executed with.
type templateContext struct {
	Name               string
	StylesSpecifier    string
	TypesSpecifier     string
	ComponentSpecifier string
	InlineTypes        bool
	Typed              bool
	Arrow              bool
	Default            bool
}
