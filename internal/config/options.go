package config

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Option is one inline override token: "key=value", "key+" or "key-".
type Option struct {
	Key   string
	Value string
	// Sign is '+' or '-' for toggle tokens and 0 for key=value tokens.
	Sign byte
}

// String renders the option back into its token form.
func (o Option) String() string {
	if o.Sign != 0 {
		return o.Key + string(o.Sign)
	}
	return o.Key + "=" + o.Value
}

var optionRegExp = regexp.MustCompile(`^([A-Za-z]+)(?:=([^=]*)|([+-]))$`)

// ParseOption parses a single token. Tokens that do not match the option
// grammar are reported with ok == false.
func ParseOption(token string) (Option, bool) {
	m := optionRegExp.FindStringSubmatch(token)
	if m == nil {
		return Option{}, false
	}
	opt := Option{Key: strings.ToLower(m[1]), Value: m[2]}
	if m[3] != "" {
		opt.Sign = m[3][0]
	}
	return opt, true
}

type span struct{ start, end int }

// pieces returns the spans of line separated by whitespace or commas.
func pieces(line string) []span {
	var out []span
	start := -1
	for i, r := range line {
		sep := unicode.IsSpace(r) || r == ','
		switch {
		case sep && start >= 0:
			out = append(out, span{start, i})
			start = -1
		case !sep && start < 0:
			start = i
		}
	}
	if start >= 0 {
		out = append(out, span{start, len(line)})
	}
	return out
}

// SplitOptions separates the leading option tokens of an input line from the
// component path that follows them. The final token is always part of the
// path. The returned path keeps its interior whitespace; stripping it is the
// path normalizer's job.
func SplitOptions(line string) ([]Option, string) {
	ps := pieces(line)
	if len(ps) == 0 {
		return nil, ""
	}

	var opts []Option
	for i, p := range ps {
		if i == len(ps)-1 {
			return opts, line[p.start:]
		}
		opt, ok := ParseOption(line[p.start:p.end])
		if !ok {
			return opts, line[p.start:]
		}
		opts = append(opts, opt)
	}

	return opts, ""
}

// WithOptions returns a copy of c with opts applied in order. Unknown keys
// and out-of-domain values are ignored and leave the previous value in
// place. The result is validated and made consistent.
func (c Config) WithOptions(opts []Option) (Config, error) {
	for _, opt := range opts {
		c = c.apply(opt)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c.Consistent(), nil
}

func (c Config) apply(opt Option) Config {
	switch opt.Key {
	case "e":
		if ext, ok := ParseExtension(opt.Value); ok && opt.Sign == 0 {
			c.ComponentExtension = ext
		}
	case "f":
		if style, ok := ParseExportStyle(opt.Value); ok && opt.Sign == 0 {
			c.ExportStyle = style
		}
	case "i":
		switch opt.Sign {
		case '+':
			c.IndexMode = IndexExports
		case '-':
			c.IndexMode = IndexNone
		default:
			if mode, ok := ParseIndexMode(opt.Value); ok {
				c.IndexMode = mode
			}
		}
	case "s":
		switch opt.Sign {
		case '-':
			c.StylesExtension = ""
		case 0:
			c.StylesExtension, _ = ParseStylesExtension(opt.Value)
		}
	case "t":
		switch opt.Sign {
		case '+':
			c.TypesMode = TypesFile
		case '-':
			c.TypesMode = TypesNone
		default:
			if mode, ok := ParseTypesMode(opt.Value); ok {
				c.TypesMode = mode
			}
		}
	case "qa":
		if v, ok := toggle(opt); ok {
			c.TestsEnabled = v
		}
	case "h":
		if v, ok := toggle(opt); ok {
			c.UseTemplates = v
		}
	case "sn":
		c.StylesFileName = nameValue(opt, c.StylesFileName)
	case "sf":
		c.StylesFolder = nameValue(opt, c.StylesFolder)
	case "tn":
		c.TypesFileName = nameValue(opt, c.TypesFileName)
	case "tf":
		c.TypesFolder = nameValue(opt, c.TypesFolder)
	case "qf":
		c.TestsFolder = nameValue(opt, c.TestsFolder)
	}
	return c
}

func toggle(opt Option) (bool, bool) {
	switch opt.Sign {
	case '+':
		return true, true
	case '-':
		return false, true
	}
	switch opt.Value {
	case "+":
		return true, true
	case "-":
		return false, true
	}
	v, err := strconv.ParseBool(opt.Value)
	if err != nil {
		return false, false
	}
	return v, true
}

func nameValue(opt Option, prev string) string {
	switch opt.Sign {
	case '-':
		return ""
	case '+':
		return prev
	}
	return opt.Value
}
