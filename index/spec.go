// SPDX-License-Identifier: MIT

package index

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unbounded marks an omitted slice bound (the "a" or "b" missing from "a:b").
const Unbounded = math.MinInt

// Kind tags the specifier variant.
type Kind uint8

const (
	KindAll Kind = iota
	KindSlice
	KindPositions
)

// Spec selects positions out of a prior index list. The zero value is All.
type Spec struct {
	kind              Kind
	start, stop, step int
	pos               []int
	scalar            bool // built by At; purely informational
}

// All keeps every prior position.
func All() Spec { return Spec{} }

// Slice selects start:stop:step; pass Unbounded for an omitted bound.
// A zero step is reported by Resolve.
func Slice(start, stop, step int) Spec {
	return Spec{kind: KindSlice, start: start, stop: stop, step: step}
}

// Range is Slice(start, stop, 1).
func Range(start, stop int) Spec { return Slice(start, stop, 1) }

// From is Slice(start, Unbounded, 1), i.e. "start:".
func From(start int) Spec { return Slice(start, Unbounded, 1) }

// To is Slice(Unbounded, stop, 1), i.e. ":stop".
func To(stop int) Spec { return Slice(Unbounded, stop, 1) }

// Positions selects explicit positions in the given order.
func Positions(p ...int) Spec {
	cp := make([]int, len(p))
	copy(cp, p)

	return Spec{kind: KindPositions, pos: cp}
}

// At selects a single position.
func At(p int) Spec {
	return Spec{kind: KindPositions, pos: []int{p}, scalar: true}
}

// Kind returns the variant tag.
func (s Spec) Kind() Kind { return s.kind }

// IsAll reports whether s keeps the prior list unchanged.
func (s Spec) IsAll() bool { return s.kind == KindAll }

// String renders s in the textual grammar accepted by Parse.
func (s Spec) String() string {
	switch s.kind {
	case KindSlice:
		bound := func(b int) string {
			if b == Unbounded {
				return ""
			}
			return strconv.Itoa(b)
		}
		out := bound(s.start) + ":" + bound(s.stop)
		if s.step != 1 {
			out += ":" + strconv.Itoa(s.step)
		}
		return out
	case KindPositions:
		parts := make([]string, len(s.pos))
		for i, p := range s.pos {
			parts[i] = strconv.Itoa(p)
		}
		out := strings.Join(parts, ",")
		if len(s.pos) == 1 && !s.scalar {
			out += ","
		}
		return out
	}

	return ":"
}

// Parse reads the textual grammar used by the CLI and config files:
//
//	""  or ":"    → All
//	"a:b[:c]"    → Slice (any part may be empty)
//	"i,j,k"      → Positions (a trailing comma keeps a single position a list)
//	"i"          → At
//
// Surrounding brackets or parentheses are ignored.
func Parse(text string) (Spec, error) {
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(strings.TrimPrefix(t, "("), "[")
	t = strings.TrimSuffix(strings.TrimSuffix(t, ")"), "]")
	t = strings.TrimSpace(t)
	if t == "" || t == ":" {
		return All(), nil
	}

	if strings.Contains(t, ":") {
		parts := strings.Split(t, ":")
		if len(parts) > 3 {
			return Spec{}, fmt.Errorf("index.Parse(%q): too many ':': %w", text, ErrValue)
		}
		vals := [3]int{Unbounded, Unbounded, 1}
		for i, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			n, err := strconv.Atoi(p)
			if err != nil {
				return Spec{}, fmt.Errorf("index.Parse(%q): %q is not an integer: %w", text, p, ErrType)
			}
			vals[i] = n
		}
		return Slice(vals[0], vals[1], vals[2]), nil
	}

	if strings.Contains(t, ",") {
		fields := strings.Split(t, ",")
		if strings.TrimSpace(fields[len(fields)-1]) == "" {
			fields = fields[:len(fields)-1]
		}
		pos := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return Spec{}, fmt.Errorf("index.Parse(%q): %q is not an integer: %w", text, f, ErrType)
			}
			pos = append(pos, n)
		}
		return Positions(pos...), nil
	}

	n, err := strconv.Atoi(t)
	if err != nil {
		return Spec{}, fmt.Errorf("index.Parse(%q): not an integer: %w", text, ErrType)
	}

	return At(n), nil
}
