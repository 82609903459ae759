package svgdoc

import (
	"encoding/xml"
	"strconv"
	"strings"
	"unicode"

	"github.com/gogpu/svgfilter/model"
)

// attrs holds an element's attributes by local name, with declarations
// from its style attribute taking precedence.
type attrs map[string]string

func newAttrs(list []xml.Attr) attrs {
	a := make(attrs, len(list))
	for _, at := range list {
		// href and xlink:href share a local name; the plain one wins.
		if _, dup := a[at.Name.Local]; dup && at.Name.Space != "" {
			continue
		}
		a[at.Name.Local] = at.Value
	}
	if style, ok := a["style"]; ok {
		for _, decl := range strings.Split(style, ";") {
			name, value, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			name = strings.TrimSpace(name)
			value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
			if name != "" && value != "" {
				a[name] = value
			}
		}
	}
	return a
}

func (a attrs) str(name string) string {
	return strings.TrimSpace(a[name])
}

// unit returns a length attribute, nil when absent or malformed.
func (a attrs) unit(name string) *model.Unit {
	s := a.str(name)
	if s == "" {
		return nil
	}
	u, err := model.ParseUnit(s)
	if err != nil {
		return nil
	}
	return &u
}

func (a attrs) number(name string, def float64) float64 {
	s := a.str(name)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// optNumber returns a number attribute, nil when absent or malformed.
func (a attrs) optNumber(name string) *float64 {
	s := a.str(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// optInt returns an integer attribute, nil when absent or malformed.
func (a attrs) optInt(name string) *int {
	s := a.str(name)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// numbers returns a list of numbers separated by commas or white space.
// A malformed entry discards the whole list.
func (a attrs) numbers(name string) []float64 {
	parts := splitList(a[name])
	if len(parts) == 0 {
		return nil
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil
		}
		out[i] = v
	}
	return out
}

func (a attrs) color(name string) model.ColorValue {
	c, _ := ParseColor(a[name])
	return c
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
