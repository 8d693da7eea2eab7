// File: key.go
// Role: Compact textual key codec for whole graphs.
//
// Format: "<v1>|<v2>|...@<from1>#<to1>#<weight1>|<from2>#<to2>#<weight2>|..."
// — the vertex list and the edge list separated by '@', vertices
// separated by '|', each edge a '#'-joined (from, to, weight) triple
// referencing vertex labels. Labels must not contain '@', '|', or '#';
// the codec does not escape.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	keySectionSep = "@"
	keyItemSep    = "|"
	keyFieldSep   = "#"
)

// Key encodes g into its compact textual form. Vertices appear in id
// order and edges in row-major matrix order, so equal graphs produce
// equal keys. The empty graph encodes as "@".
func (g *Graph) Key() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(g.vertices, keyItemSep))
	sb.WriteString(keySectionSep)
	for n, e := range g.Edges() {
		if n > 0 {
			sb.WriteString(keyItemSep)
		}
		sb.WriteString(e.From)
		sb.WriteString(keyFieldSep)
		sb.WriteString(e.To)
		sb.WriteString(keyFieldSep)
		sb.WriteString(strconv.FormatInt(e.Weight, 10))
	}

	return sb.String()
}

// ParseKey decodes a compact key back into a Graph. The input must split
// into exactly two '@'-separated sections, and every edge entry into
// exactly three '#'-separated fields; anything else fails with a single
// summarizing ErrMalformedKey rather than pinpointing the bad token.
func ParseKey(s string) (*Graph, error) {
	sections := strings.Split(s, keySectionSep)
	if len(sections) != 2 {
		return nil, fmt.Errorf("%w: want 2 sections, got %d", ErrMalformedKey, len(sections))
	}

	g := New()
	if sections[0] != "" {
		g.AddAll(strings.Split(sections[0], keyItemSep)...)
	}
	if sections[1] == "" {
		return g, nil
	}

	for _, entry := range strings.Split(sections[1], keyItemSep) {
		fields := strings.Split(entry, keyFieldSep)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: edge entry needs 3 fields, got %d", ErrMalformedKey, len(fields))
		}
		weight, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad edge weight %q", ErrMalformedKey, fields[2])
		}
		if _, err = g.SetWeight(fields[0], fields[1], weight); err != nil {
			// Edge references a label missing from the vertex section.
			return nil, fmt.Errorf("%w: edge references unknown vertex", ErrMalformedKey)
		}
	}

	return g, nil
}
