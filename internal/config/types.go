package config

import "strings"

// Extension is the source-file extension of the generated component.
type Extension string

const (
	ExtensionJS  Extension = ".js"
	ExtensionJSX Extension = ".jsx"
	ExtensionTSX Extension = ".tsx"
)

// SupportsTypes reports whether files with this extension accept type annotations.
func (e Extension) SupportsTypes() bool {
	return e == ExtensionTSX
}

// ParseExtension accepts either the short name (JS, JSX, TSX, or TS for TSX)
// or the literal extension (.js, .jsx, .tsx), case-insensitively.
func ParseExtension(value string) (Extension, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "js", ".js":
		return ExtensionJS, true
	case "jsx", ".jsx":
		return ExtensionJSX, true
	case "tsx", ".tsx", "ts":
		return ExtensionTSX, true
	}
	return "", false
}

// ExportStyle selects how the component is declared and exported.
type ExportStyle string

const (
	ExportArrowDefault    ExportStyle = "AD"
	ExportArrowNamed      ExportStyle = "AN"
	ExportFunctionDefault ExportStyle = "DD"
	ExportFunctionNamed   ExportStyle = "DN"
)

// IsDefault reports whether the component is the module's default export.
func (s ExportStyle) IsDefault() bool {
	return s == ExportArrowDefault || s == ExportFunctionDefault
}

// IsArrow reports whether the component is declared as an arrow function.
func (s ExportStyle) IsArrow() bool {
	return s == ExportArrowDefault || s == ExportArrowNamed
}

func ParseExportStyle(value string) (ExportStyle, bool) {
	switch ExportStyle(strings.ToUpper(strings.TrimSpace(value))) {
	case ExportArrowDefault:
		return ExportArrowDefault, true
	case ExportArrowNamed:
		return ExportArrowNamed, true
	case ExportFunctionDefault:
		return ExportFunctionDefault, true
	case ExportFunctionNamed:
		return ExportFunctionNamed, true
	}
	return "", false
}

// IndexMode controls index file generation.
type IndexMode string

const (
	// IndexNone names the component file after the component.
	IndexNone IndexMode = "NONE"
	// IndexComponent makes the component file itself the folder's index.
	IndexComponent IndexMode = "COMPONENT"
	// IndexExports adds a separate barrel file re-exporting the component.
	IndexExports IndexMode = "EXPORTS"
)

func ParseIndexMode(value string) (IndexMode, bool) {
	switch IndexMode(strings.ToUpper(strings.TrimSpace(value))) {
	case IndexNone:
		return IndexNone, true
	case IndexComponent:
		return IndexComponent, true
	case IndexExports:
		return IndexExports, true
	}
	return "", false
}

// TypesMode controls where the props type is declared.
type TypesMode string

const (
	TypesNone   TypesMode = "NONE"
	TypesInline TypesMode = "INLINE"
	TypesFile   TypesMode = "FILE"
)

func ParseTypesMode(value string) (TypesMode, bool) {
	switch TypesMode(strings.ToUpper(strings.TrimSpace(value))) {
	case TypesNone:
		return TypesNone, true
	case TypesInline:
		return TypesInline, true
	case TypesFile:
		return TypesFile, true
	}
	return "", false
}

// Known stylesheet extensions by short name.
var stylesAliases = map[string]string{
	"CSS":         ".css",
	"CSS_MODULES": ".module.css",
	"CSS MODULES": ".module.css",
	"MODULES":     ".module.css",
	"LESS":        ".less",
	"SCSS":        ".scss",
	"SASS":        ".sass",
}

// ParseStylesExtension resolves a styles setting. The boolean result reports
// whether a styles file is wanted; NONE and the empty string disable it.
// Values that are not a known short name are returned unchanged so that
// validation can report them.
func ParseStylesExtension(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	upper := strings.ToUpper(trimmed)
	if upper == "" || upper == "NONE" || upper == "NO" {
		return "", false
	}
	if ext, ok := stylesAliases[upper]; ok {
		return ext, true
	}
	return trimmed, true
}
