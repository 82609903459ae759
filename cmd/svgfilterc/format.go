package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/svgfilter/geom"
)

type messageType int

const (
	statusMessage messageType = iota
	warnMessage
	errorMessage
)

const (
	defaultColor = "\x1b[0m"
	statusColor  = "\x1b[36m"
	warnColor    = "\x1b[33m"
	errorColor   = "\x1b[31m"
)

// decorate wraps s in the terminal color of its message type.
func decorate(s string, t messageType, color bool) string {
	if !color {
		return s
	}
	switch t {
	case statusMessage:
		return statusColor + s + defaultColor
	case warnMessage:
		return warnColor + s + defaultColor
	case errorMessage:
		return errorColor + s + defaultColor
	default:
		return s
	}
}

var errRectFormat = errors.New("want four numbers x,y,w,h")

// parseRect parses "x,y,w,h". Whitespace may separate the numbers too.
func parseRect(s string) (geom.Rect, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 4 {
		return geom.Rect{}, errRectFormat
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("%w: %w", errRectFormat, err)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return geom.Rect{}, fmt.Errorf("negative size %gx%g", v[2], v[3])
	}
	return geom.XYWH(v[0], v[1], v[2], v[3]), nil
}

func formatRect(r geom.Rect) string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.MinX, r.MinY, r.Width(), r.Height())
}
