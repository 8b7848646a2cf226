// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// StyleKind classifies how reference document styles are combined.
type StyleKind string

const (
	// StyleNone applies with zero or one reference document.
	StyleNone StyleKind = "none"

	// StylePrimary marks one numbered reference as the style to emulate.
	StylePrimary StyleKind = "primary"

	// StyleBlend combines the best elements of every reference.
	StyleBlend StyleKind = "blend"
)

// StylePreference is the resolved form of the raw style_preference answer.
// Index is 1-based into the reference list and only meaningful for
// StylePrimary.
type StylePreference struct {
	Kind  StyleKind
	Index int
}

// Primary returns the reference selected by a StylePrimary preference, or ""
// for other kinds.
func (p StylePreference) Primary(refs []string) string {
	if p.Kind != StylePrimary || p.Index < 1 || p.Index > len(refs) {
		return ""
	}
	return refs[p.Index-1]
}

// ResolveStylePreference computes the preference from the raw answer and the
// reference list it indexes into. With at most one reference the preference is
// always StyleNone and raw is ignored. The literal "blend" is matched
// case-insensitively; an integer must be within [1, len(refs)].
func ResolveStylePreference(raw string, refs []string) (StylePreference, error) {
	if len(refs) <= 1 {
		return StylePreference{Kind: StyleNone}, nil
	}

	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, string(StyleBlend)) {
		return StylePreference{Kind: StyleBlend}, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return StylePreference{}, fmt.Errorf("style preference %q: enter a number between 1 and %d, or %q", raw, len(refs), StyleBlend)
	}
	if n < 1 || n > len(refs) {
		return StylePreference{}, fmt.Errorf("style preference %d out of range: %d reference(s) listed", n, len(refs))
	}
	return StylePreference{Kind: StylePrimary, Index: n}, nil
}
