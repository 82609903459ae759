package svgdoc

import (
	"strconv"
	"strings"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/internal/mathx"
	"github.com/gogpu/svgfilter/model"
)

// ParseColor parses a flood-color or lighting-color value. It reports
// false when s is not a color at all, in which case the property keeps its
// default. Paint server references parse as unsupported colors.
func ParseColor(s string) (model.ColorValue, bool) {
	s = strings.TrimSpace(s)
	low := strings.ToLower(s)
	switch {
	case low == "":
		return model.ColorValue{}, false
	case low == "currentcolor":
		return model.CurrentColor, true
	case strings.HasPrefix(low, "url("):
		return model.ColorValue{Kind: model.ColorUnsupported}, true
	case low[0] == '#':
		c, ok := parseHexColor(low[1:])
		return model.RGB(c), ok
	case strings.HasPrefix(low, "rgb(") || strings.HasPrefix(low, "rgba("):
		c, ok := parseRGBFunc(low)
		return model.RGB(c), ok
	}
	if c, ok := namedColors[low]; ok {
		return model.RGB(c), true
	}
	return model.ColorValue{}, false
}

// parseHexColor parses RGB, RGBA, RRGGBB or RRGGBBAA digits.
func parseHexColor(hex string) (filter.Color, bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return filter.Color{}, false
	}
	n := uint32(v) // #nosec G115 -- at most 8 hex digits
	switch len(hex) {
	case 3:
		return filter.Color{R: nibble(n >> 8), G: nibble(n >> 4), B: nibble(n), A: 255}, true
	case 4:
		return filter.Color{R: nibble(n >> 12), G: nibble(n >> 8), B: nibble(n >> 4), A: nibble(n)}, true
	case 6:
		return filter.Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, true
	case 8:
		return filter.Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, true
	default:
		return filter.Color{}, false
	}
}

// nibble expands a single hex digit: f becomes ff.
func nibble(v uint32) uint8 {
	return uint8(v&0xf) * 17 // #nosec G115
}

// parseRGBFunc parses rgb(r, g, b) and rgba(r, g, b, a). Components may be
// numbers or percentages; alpha is a number in [0, 1] or a percentage.
func parseRGBFunc(s string) (filter.Color, bool) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return filter.Color{}, false
	}
	parts := splitList(strings.ReplaceAll(s[open+1:end], "/", " "))
	if len(parts) != 3 && len(parts) != 4 {
		return filter.Color{}, false
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		pct := strings.HasSuffix(p, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return filter.Color{}, false
		}
		switch {
		case i == 3 && pct:
			v /= 100
		case i < 3 && pct:
			v = v * 255 / 100
		}
		ch[i] = v
	}
	return filter.Color{
		R: mathx.ClampByte(ch[0] + 0.5),
		G: mathx.ClampByte(ch[1] + 0.5),
		B: mathx.ClampByte(ch[2] + 0.5),
		A: mathx.ClampByte(ch[3]*255 + 0.5),
	}, true
}

// namedColors holds the CSS basic color keywords and the extended names
// that show up most in filter markup.
var namedColors = map[string]filter.Color{
	"transparent":    filter.TransparentBlack,
	"black":          {A: 255},
	"silver":         {R: 192, G: 192, B: 192, A: 255},
	"gray":           {R: 128, G: 128, B: 128, A: 255},
	"grey":           {R: 128, G: 128, B: 128, A: 255},
	"white":          {R: 255, G: 255, B: 255, A: 255},
	"maroon":         {R: 128, A: 255},
	"red":            {R: 255, A: 255},
	"purple":         {R: 128, B: 128, A: 255},
	"fuchsia":        {R: 255, B: 255, A: 255},
	"magenta":        {R: 255, B: 255, A: 255},
	"green":          {G: 128, A: 255},
	"lime":           {G: 255, A: 255},
	"olive":          {R: 128, G: 128, A: 255},
	"yellow":         {R: 255, G: 255, A: 255},
	"navy":           {B: 128, A: 255},
	"blue":           {B: 255, A: 255},
	"teal":           {G: 128, B: 128, A: 255},
	"aqua":           {G: 255, B: 255, A: 255},
	"cyan":           {G: 255, B: 255, A: 255},
	"orange":         {R: 255, G: 165, A: 255},
	"gold":           {R: 255, G: 215, A: 255},
	"pink":           {R: 255, G: 192, B: 203, A: 255},
	"brown":          {R: 165, G: 42, B: 42, A: 255},
	"coral":          {R: 255, G: 127, B: 80, A: 255},
	"tomato":         {R: 255, G: 99, B: 71, A: 255},
	"crimson":        {R: 220, G: 20, B: 60, A: 255},
	"indigo":         {R: 75, B: 130, A: 255},
	"violet":         {R: 238, G: 130, B: 238, A: 255},
	"darkgray":       {R: 169, G: 169, B: 169, A: 255},
	"darkgrey":       {R: 169, G: 169, B: 169, A: 255},
	"lightgray":      {R: 211, G: 211, B: 211, A: 255},
	"lightgrey":      {R: 211, G: 211, B: 211, A: 255},
	"dimgray":        {R: 105, G: 105, B: 105, A: 255},
	"dimgrey":        {R: 105, G: 105, B: 105, A: 255},
	"darkblue":       {B: 139, A: 255},
	"darkgreen":      {G: 100, A: 255},
	"darkred":        {R: 139, A: 255},
	"skyblue":        {R: 135, G: 206, B: 235, A: 255},
	"steelblue":      {R: 70, G: 130, B: 180, A: 255},
	"royalblue":      {R: 65, G: 105, B: 225, A: 255},
	"slategray":      {R: 112, G: 128, B: 144, A: 255},
	"slategrey":      {R: 112, G: 128, B: 144, A: 255},
	"goldenrod":      {R: 218, G: 165, B: 32, A: 255},
	"khaki":          {R: 240, G: 230, B: 140, A: 255},
	"salmon":         {R: 250, G: 128, B: 114, A: 255},
	"seagreen":       {R: 46, G: 139, B: 87, A: 255},
	"turquoise":      {R: 64, G: 224, B: 208, A: 255},
	"chocolate":      {R: 210, G: 105, B: 30, A: 255},
	"firebrick":      {R: 178, G: 34, B: 34, A: 255},
	"orangered":      {R: 255, G: 69, A: 255},
	"hotpink":        {R: 255, G: 105, B: 180, A: 255},
	"deeppink":       {R: 255, G: 20, B: 147, A: 255},
	"limegreen":      {R: 50, G: 205, B: 50, A: 255},
	"forestgreen":    {R: 34, G: 139, B: 34, A: 255},
	"midnightblue":   {R: 25, G: 25, B: 112, A: 255},
	"darkorange":     {R: 255, G: 140, A: 255},
	"lightblue":      {R: 173, G: 216, B: 230, A: 255},
	"lightyellow":    {R: 255, G: 255, B: 224, A: 255},
	"ivory":          {R: 255, G: 255, B: 240, A: 255},
	"beige":          {R: 245, G: 245, B: 220, A: 255},
	"lavender":       {R: 230, G: 230, B: 250, A: 255},
	"plum":           {R: 221, G: 160, B: 221, A: 255},
	"orchid":         {R: 218, G: 112, B: 214, A: 255},
	"tan":            {R: 210, G: 180, B: 140, A: 255},
	"wheat":          {R: 245, G: 222, B: 179, A: 255},
	"snow":           {R: 255, G: 250, B: 250, A: 255},
	"whitesmoke":     {R: 245, G: 245, B: 245, A: 255},
	"gainsboro":      {R: 220, G: 220, B: 220, A: 255},
	"dodgerblue":     {R: 30, G: 144, B: 255, A: 255},
	"deepskyblue":    {G: 191, B: 255, A: 255},
	"cornflowerblue": {R: 100, G: 149, B: 237, A: 255},
	"rebeccapurple":  {R: 102, G: 51, B: 153, A: 255},
}
