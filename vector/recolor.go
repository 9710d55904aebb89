// Package vector rewrites the fill and stroke colors of an externally
// supplied SVG so the graphic matches a generated palette. It never
// parses or rasterizes the document; the rewrite is a string-level
// replacement of attribute values, and everything else in the input is
// left byte-for-byte intact.
package vector

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// fill="#AABBCC" / stroke='red' attribute form.
var attrRe = regexp.MustCompile(`(fill|stroke)\s*=\s*(["'])([^"']*)(["'])`)

// fill:#AABBCC inside style attributes or <style> blocks.
var styleRe = regexp.MustCompile(`(fill|stroke)\s*:\s*([^;"'}]+)`)

// Recolor maps the distinct paint colors of the SVG onto the palette
// slots and returns the rewritten document. Source colors are ranked by
// how often they occur (ties broken by first appearance) and assigned
// round-robin: the most frequent paint gets slot 0, and so on.
func Recolor(svg []byte, hexes []string) ([]byte, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("no palette colors provided")
	}

	mapping := buildMapping(string(svg), hexes)
	if len(mapping) == 0 {
		return svg, nil
	}

	out := attrRe.ReplaceAllStringFunc(string(svg), func(m string) string {
		parts := attrRe.FindStringSubmatch(m)
		if repl, ok := mapping[paintKey(parts[3])]; ok {
			return parts[1] + "=" + parts[2] + repl + parts[4]
		}
		return m
	})
	out = styleRe.ReplaceAllStringFunc(out, func(m string) string {
		parts := styleRe.FindStringSubmatch(m)
		if repl, ok := mapping[paintKey(parts[2])]; ok {
			return parts[1] + ":" + repl
		}
		return m
	})

	return []byte(out), nil
}

// buildMapping ranks the document's paints and assigns palette slots.
func buildMapping(svg string, hexes []string) map[string]string {
	type paint struct {
		key   string
		count int
		first int
	}
	seen := make(map[string]*paint)
	var order []*paint

	note := func(value string, pos int) {
		key := paintKey(value)
		if !isPaint(key) {
			return
		}
		if p, ok := seen[key]; ok {
			p.count++
			return
		}
		p := &paint{key: key, count: 1, first: pos}
		seen[key] = p
		order = append(order, p)
	}

	for _, m := range attrRe.FindAllStringSubmatchIndex(svg, -1) {
		note(svg[m[6]:m[7]], m[0])
	}
	for _, m := range styleRe.FindAllStringSubmatchIndex(svg, -1) {
		note(svg[m[4]:m[5]], m[0])
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	mapping := make(map[string]string, len(order))
	for i, p := range order {
		mapping[p.key] = hexes[i%len(hexes)]
	}
	return mapping
}

func paintKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// isPaint reports whether an attribute value is an actual color rather
// than a non-paint keyword or a reference to another element.
func isPaint(value string) bool {
	switch value {
	case "", "none", "transparent", "inherit", "currentcolor":
		return false
	}
	return !strings.HasPrefix(value, "url(")
}
