// Package urltemplate parses and matches URL templates with named segments.
//
// A template is a path with optional named captures and an optional query part:
//
//	/items/:id
//	/static/:path*
//	/search?q=:term
//
// A ":name" segment captures exactly one non-empty path segment. A trailing
// ":name*" captures the remainder of the path, which may be empty. Query pairs
// whose value is ":name" capture the first value of that query key; the key
// must be present for the template to match. Other query pairs must match
// literally.
//
// Parsing is total: any string parses into some template. Segments that do not
// start with ":" are literals, so there is no invalid syntax to reject.
package urltemplate

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

type segmentKind int

const (
	segLiteral segmentKind = iota
	segCapture
	segWildcard
)

type segment struct {
	kind segmentKind
	// literal text, or the capture name without the ":" and "*" markers.
	value string
}

type searchPair struct {
	key     string
	capture bool
	// literal value, or the capture name.
	value string
}

// Template is a parsed URL template, ready for matching and building.
type Template struct {
	raw      string
	segments []segment
	search   []searchPair
}

// Captures holds the named values bound during a successful match. Keys whose
// captured value was empty are omitted entirely.
type Captures struct {
	Pathname map[string]string
	Search   map[string]string
}

// Parse compiles raw into a Template. It never fails: unrecognized syntax is
// treated as literal text.
func Parse(raw string) *Template {
	pathPart, searchPart, hasSearch := strings.Cut(raw, "?")

	parts := strings.Split(pathPart, "/")
	segments := make([]segment, 0, len(parts))
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, ":") && strings.HasSuffix(part, "*") && i == len(parts)-1:
			segments = append(segments, segment{kind: segWildcard, value: part[1 : len(part)-1]})
		case strings.HasPrefix(part, ":") && len(part) > 1:
			segments = append(segments, segment{kind: segCapture, value: part[1:]})
		default:
			segments = append(segments, segment{kind: segLiteral, value: part})
		}
	}

	tpl := &Template{raw: raw, segments: segments}
	if !hasSearch {
		return tpl
	}

	for _, pair := range strings.Split(searchPart, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}

		if strings.HasPrefix(value, ":") && len(value) > 1 {
			tpl.search = append(tpl.search, searchPair{key: key, capture: true, value: value[1:]})
		} else {
			tpl.search = append(tpl.search, searchPair{key: key, value: value})
		}
	}

	return tpl
}

// String returns the raw template text.
func (t *Template) String() string { return t.raw }

// Match tests u against the template. On success it returns the bound captures;
// the Pathname and Search maps are nil when the respective part bound nothing.
func (t *Template) Match(u *url.URL) (Captures, bool) {
	var caps Captures

	parts := strings.Split(u.Path, "/")
	wild := len(t.segments) > 0 && t.segments[len(t.segments)-1].kind == segWildcard

	if wild {
		if len(parts) < len(t.segments)-1 {
			return caps, false
		}
	} else if len(parts) != len(t.segments) {
		return caps, false
	}

	for i, seg := range t.segments {
		switch seg.kind {
		case segLiteral:
			if parts[i] != seg.value {
				return caps, false
			}
		case segCapture:
			if parts[i] == "" {
				return caps, false
			}
			caps.bindPathname(seg.value, parts[i])
		case segWildcard:
			caps.bindPathname(seg.value, strings.Join(parts[i:], "/"))
		}
	}

	if len(t.search) > 0 {
		query := u.Query()
		for _, pair := range t.search {
			values, ok := query[pair.key]
			if !ok {
				return caps, false
			}

			if pair.capture {
				caps.bindSearch(pair.value, values[0])
			} else if values[0] != pair.value {
				return caps, false
			}
		}
	}

	return caps, true
}

// Build substitutes vals for the template's captures in order (path captures
// first, then search captures) and returns the resulting URL string.
func (t *Template) Build(vals ...string) (string, error) {
	n := t.NumCaptures()
	if len(vals) != n {
		return "", errors.Newf("template %q takes %d value(s), got %d", t.raw, n, len(vals))
	}

	var sb strings.Builder
	for i, seg := range t.segments {
		if i > 0 {
			sb.WriteString("/")
		}
		if seg.kind == segLiteral {
			sb.WriteString(seg.value)
		} else {
			sb.WriteString(vals[0])
			vals = vals[1:]
		}
	}

	for i, pair := range t.search {
		if i == 0 {
			sb.WriteString("?")
		} else {
			sb.WriteString("&")
		}
		sb.WriteString(pair.key)
		sb.WriteString("=")
		if pair.capture {
			sb.WriteString(url.QueryEscape(vals[0]))
			vals = vals[1:]
		} else {
			sb.WriteString(pair.value)
		}
	}

	return sb.String(), nil
}

// NumCaptures returns how many values Build expects.
func (t *Template) NumCaptures() int {
	n := 0
	for _, seg := range t.segments {
		if seg.kind != segLiteral {
			n++
		}
	}
	for _, pair := range t.search {
		if pair.capture {
			n++
		}
	}
	return n
}

func (c *Captures) bindPathname(name, value string) {
	if value == "" {
		return
	}
	if c.Pathname == nil {
		c.Pathname = make(map[string]string)
	}
	c.Pathname[name] = value
}

func (c *Captures) bindSearch(name, value string) {
	if value == "" {
		return
	}
	if c.Search == nil {
		c.Search = make(map[string]string)
	}
	c.Search[name] = value
}
