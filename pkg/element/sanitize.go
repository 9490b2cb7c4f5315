package element

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var shapeAttrs = []string{
	"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2", "points", "rx", "ry",
	"fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin", "class",
}

// svgAllowlist maps each permitted SVG element to its permitted attributes.
var svgAllowlist = map[string][]string{
	"svg": {
		"xmlns", "viewBox", "width", "height", "fill", "stroke", "stroke-width",
		"stroke-linecap", "stroke-linejoin", "aria-hidden", "role", "focusable", "class",
	},
	"g":        {"id"},
	"defs":     {"id"},
	"clipPath": {"id", "clipPathUnits"},
	"use":      {"href", "xlink:href", "clip-path"},
	"title":    nil,
	"desc":     nil,
	"path":     shapeAttrs,
	"circle":   shapeAttrs,
	"rect":     shapeAttrs,
	"line":     shapeAttrs,
	"polyline": shapeAttrs,
	"polygon":  shapeAttrs,
	"ellipse":  shapeAttrs,
}

var iconSanitizer = sync.OnceValue(func() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	for el, attrs := range svgAllowlist {
		policy.AllowElements(el)
		if len(attrs) > 0 {
			policy.AllowAttrs(attrs...).OnElements(el)
		}
	}
	return policy
})

var markupSanitizer = sync.OnceValue(bluemonday.UGCPolicy)

func sanitizeIconMarkup(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(raw))
}
