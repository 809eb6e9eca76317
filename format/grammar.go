// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/tabview/errs"
)

// MaxWidth is the largest accepted field width.
const MaxWidth = 244

// Defaults used by tables and matrices.
const (
	DefaultNumeric = "%9.0g"
	DefaultString  = "%11s"
	DefaultMatrix  = "%10.0g"
)

var (
	// ErrValue reports a string that is not a legal display format.
	ErrValue = errs.ErrValue
	// ErrType reports a value whose kind does not match the format class.
	ErrType = errs.ErrType
)

// Class groups formats by what they render.
type Class uint8

const (
	ClassNumeric Class = iota
	ClassString
	ClassDate
	ClassCalendar
	ClassBinary
	ClassHex
)

var classNames = [...]string{"numeric", "string", "date", "calendar", "binary", "hex"}

// String implements fmt.Stringer.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}

	return "class(" + strconv.Itoa(int(c)) + ")"
}

var dateDetails = func() string {
	lits := []string{
		"CC", "cc", "YY", "yy", "JJJ", "jjj", "Month", "Mon", "month",
		"mon", "NN", "nn", "DD", "dd", "DAYNAME", "Dayname", "Day", "Da",
		"day", "da", "q", "WW", "ww", "HH", "Hh", "hH", "hh", "h", "MM",
		"mm", "SS", "ss", ".sss", ".ss", ".s", "am", "a.m.", "AM", "A.M.",
		".", ",", ":", "-", `\`, "_", "+", "/",
	}
	alts := make([]string, 0, len(lits)+1)
	for _, l := range lits {
		alts = append(alts, regexp.QuoteMeta(l))
	}
	alts = append(alts, `!.`) // "!" escapes the next character

	return strings.Join(alts, "|")
}()

var (
	numRE  = regexp.MustCompile(`^%(-)?(0)?([0-9]+)(\.|,)([0-9]+)(f|g|e)(c)?$`)
	strRE  = regexp.MustCompile(`^%(-|~)?(0)?([0-9]+)s$`)
	timeRE = regexp.MustCompile(`^%(-)?t(c|C|d|w|m|q|h|y|g)((?:` + dateDetails + `)*)$`)
	tbRE   = regexp.MustCompile(`^%(-)?tb([^:]*)(:(?:` + dateDetails + `)*)?$`)
	binRE  = regexp.MustCompile(`^%(-)?(8|16)(H|L)$`)
)

// Spec is a parsed display format.
type Spec struct {
	Raw    string
	Class  Class
	Left   bool // '-' flag
	Center bool // '~' flag (strings only)
	Zero   bool // '0' flag
	Width  int  // field width; 0 for date/calendar formats
	Prec   int  // digits after the point (f/e) or significant digits (g); 0 = automatic for g
	Verb   byte // f, g, e for numeric; s; t-unit letter; H/L; x

	DecimalComma bool // ',' in place of '.'
	Thousands    bool // trailing 'c'
	Calendar     string
	Details      string
	Bytes        int // 8 or 16 for binary formats
}

// Parse MAIN DESCRIPTION:
//   - Classify f by its leading characters or trailing verb and validate it
//     against the matching grammar row.
//
// Errors:
//   - ErrValue (wrapped) when f is not a legal format.
func Parse(f string) (Spec, error) {
	raw := f
	f = strings.TrimSpace(f)
	bad := func(why string) (Spec, error) {
		return Spec{}, fmt.Errorf("format.Parse(%q): %s: %w", raw, why, ErrValue)
	}
	if len(f) < 2 || f[0] != '%' {
		return bad("must start with '%'")
	}

	if strings.HasPrefix(f[1:], "tb") || strings.HasPrefix(f[1:], "-tb") {
		m := tbRE.FindStringSubmatch(f)
		if m == nil {
			return bad("bad business-calendar format")
		}
		return Spec{Raw: f, Class: ClassCalendar, Left: m[1] != "", Verb: 'b',
			Calendar: m[2], Details: strings.TrimPrefix(m[3], ":")}, nil
	}
	if f[1] == 't' || strings.HasPrefix(f[1:], "-t") {
		m := timeRE.FindStringSubmatch(f)
		if m == nil {
			return bad("bad date format")
		}
		return Spec{Raw: f, Class: ClassDate, Left: m[1] != "", Verb: m[2][0], Details: m[3]}, nil
	}

	switch f[len(f)-1] {
	case 's':
		m := strRE.FindStringSubmatch(f)
		if m == nil {
			return bad("bad string format")
		}
		w, _ := strconv.Atoi(m[3])
		if w == 0 || w > MaxWidth {
			return bad(fmt.Sprintf("width must be in 1..%d", MaxWidth))
		}
		return Spec{Raw: f, Class: ClassString, Left: m[1] == "-", Center: m[1] == "~",
			Zero: m[2] != "", Width: w, Verb: 's'}, nil
	case 'H', 'L':
		m := binRE.FindStringSubmatch(f)
		if m == nil {
			return bad("binary formats are %8H, %16H, %8L, %16L")
		}
		n, _ := strconv.Atoi(m[2])
		return Spec{Raw: f, Class: ClassBinary, Left: m[1] != "", Width: n, Bytes: n, Verb: m[3][0]}, nil
	case 'x':
		switch f {
		case "%21x":
			return Spec{Raw: f, Class: ClassHex, Width: 21, Verb: 'x'}, nil
		case "%-12x":
			return Spec{Raw: f, Class: ClassHex, Left: true, Width: 12, Verb: 'x'}, nil
		}
		return bad("hex formats are %21x and %-12x")
	case 'f', 'g', 'e', 'c':
		m := numRE.FindStringSubmatch(f)
		if m == nil {
			return bad("bad numeric format")
		}
		w, err1 := strconv.Atoi(m[3])
		d, err2 := strconv.Atoi(m[5])
		if err1 != nil || err2 != nil || w == 0 || w <= d || w > MaxWidth {
			return bad(fmt.Sprintf("need 0 < width ≤ %d and digits < width", MaxWidth))
		}
		return Spec{Raw: f, Class: ClassNumeric, Left: m[1] != "", Zero: m[2] != "",
			Width: w, Prec: d, DecimalComma: m[4] == ",", Verb: m[6][0], Thousands: m[7] != ""}, nil
	}

	return bad("unknown format class")
}

// IsFmt reports whether f is any legal display format.
func IsFmt(f string) bool {
	_, err := Parse(f)

	return err == nil
}

// IsStrFmt reports whether f is a legal string format.
func IsStrFmt(f string) bool {
	s, err := Parse(f)

	return err == nil && s.Class == ClassString
}

// IsNumFmt reports whether f is a legal non-string format.
func IsNumFmt(f string) bool {
	s, err := Parse(f)

	return err == nil && s.Class != ClassString
}
