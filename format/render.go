// SPDX-License-Identifier: MIT

package format

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/katalvlaran/tabview/value"
)

// Render formats v with the display format f.
// v may be a value.Scalar, value.Sentinel, string, nil or any Go number.
func Render(f string, v any) (string, error) {
	s, err := Parse(f)
	if err != nil {
		return "", err
	}

	return s.Render(v)
}

// Render formats v. Missing values render by name in every non-string class.
// Errors: ErrType when a string meets a non-string format or vice versa.
func (s Spec) Render(v any) (string, error) {
	sc, err := value.From(v)
	if err != nil {
		return "", fmt.Errorf("format.Render(%q): %w", s.Raw, err)
	}
	if s.Class == ClassString {
		txt, ok := sc.Text()
		if !ok {
			return "", fmt.Errorf("format.Render(%q): %s value with a string format: %w", s.Raw, sc.Kind(), ErrType)
		}
		return s.pad(truncate(txt, s.Width)), nil
	}
	if sc.IsString() {
		return "", fmt.Errorf("format.Render(%q): string value with a %s format: %w", s.Raw, s.Class, ErrType)
	}
	if m, ok := sc.Sentinel(); ok {
		return s.pad(m.Name()), nil
	}
	x, _ := sc.Float64()

	var body string
	switch s.Class {
	case ClassNumeric:
		body = s.number(x)
	case ClassDate:
		body = s.date(x)
	case ClassCalendar:
		body = general(x, 9)
	case ClassBinary:
		body = s.bits(x)
	case ClassHex:
		body = strconv.FormatFloat(x, 'x', -1, 64)
	}

	return s.pad(body), nil
}

// pad aligns body in the field width (right by default).
func (s Spec) pad(body string) string {
	n := utf8.RuneCountInString(body)
	if n >= s.Width {
		return body
	}
	gap := s.Width - n
	switch {
	case s.Left:
		return body + strings.Repeat(" ", gap)
	case s.Center:
		l := gap / 2
		return strings.Repeat(" ", l) + body + strings.Repeat(" ", gap-l)
	case s.Zero && s.Class == ClassNumeric:
		sign := ""
		if strings.HasPrefix(body, "-") {
			sign, body = "-", body[1:]
		}
		return sign + strings.Repeat("0", gap) + body
	}

	return strings.Repeat(" ", gap) + body
}

func truncate(s string, w int) string {
	if utf8.RuneCountInString(s) <= w {
		return s
	}

	return string([]rune(s)[:w])
}

// number renders f, g and e verbs with the comma options.
func (s Spec) number(x float64) string {
	var body string
	switch s.Verb {
	case 'f':
		body = strconv.FormatFloat(x, 'f', s.Prec, 64)
	case 'e':
		body = strconv.FormatFloat(x, 'e', s.Prec, 64)
	default:
		if s.Prec == 0 {
			body = general(x, s.Width)
		} else {
			body = trimZero(strconv.FormatFloat(x, 'g', s.Prec, 64))
		}
	}
	if s.Thousands {
		body = group(body)
	}
	if s.DecimalComma {
		body = strings.Map(func(r rune) rune {
			switch r {
			case '.':
				return ','
			case ',':
				return '.'
			}
			return r
		}, body)
	}

	return body
}

// general picks the most significant digits whose unsigned rendering fits
// in width-1 columns, dropping the leading zero of |x| < 1.
func general(x float64, width int) string {
	neg := x < 0
	ax := math.Abs(x)
	var body string
	for prec := 17; prec >= 1; prec-- {
		body = trimZero(strconv.FormatFloat(ax, 'g', prec, 64))
		if len(body) <= width-1 {
			break
		}
	}
	if neg {
		body = "-" + body
	}

	return body
}

// trimZero turns "0.5" into ".5" and "-0.5" into "-.5".
func trimZero(s string) string {
	switch {
	case strings.HasPrefix(s, "0."):
		return s[1:]
	case strings.HasPrefix(s, "-0."):
		return "-" + s[2:]
	}

	return s
}

// group inserts thousands separators into the integer part.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, rest := s, ""
	if i := strings.IndexAny(s, ".e"); i >= 0 {
		intPart, rest = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	return sign + b.String() + rest
}

var epoch = time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	msPerDay       = 86400000
	// beyond this many milliseconds %tc falls back to a plain number
	maxClockMillis = 1e18
)

// date renders the default layout of each date unit; counts are relative
// to 1 January 1960.
func (s Spec) date(x float64) string {
	n := int(math.Floor(x))
	switch s.Verb {
	case 'c', 'C':
		if !(math.Abs(x) < maxClockMillis) {
			return general(x, 9)
		}
		// whole days first, so the Duration only ever holds one day
		days := math.Floor(x / msPerDay)
		ms := x - days*msPerDay
		t := epoch.AddDate(0, 0, int(days)).Add(time.Duration(ms) * time.Millisecond)
		return strings.ToLower(t.Format("02Jan2006 15:04:05"))
	case 'd':
		return strings.ToLower(epoch.AddDate(0, 0, n).Format("02Jan2006"))
	case 'w':
		return fmt.Sprintf("%dw%d", 1960+floorDiv(n, 52), floorMod(n, 52)+1)
	case 'm':
		return fmt.Sprintf("%dm%d", 1960+floorDiv(n, 12), floorMod(n, 12)+1)
	case 'q':
		return fmt.Sprintf("%dq%d", 1960+floorDiv(n, 4), floorMod(n, 4)+1)
	case 'h':
		return fmt.Sprintf("%dh%d", 1960+floorDiv(n, 2), floorMod(n, 2)+1)
	case 'y':
		return strconv.Itoa(n)
	}

	return general(x, 9)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func floorMod(a, b int) int { return a - floorDiv(a, b)*b }

// bits renders the IEEE bytes: %16H/%16L of the double, %8H/%8L of the
// float32; H is big-endian, L little-endian.
func (s Spec) bits(x float64) string {
	var buf [8]byte
	order := binary.ByteOrder(binary.BigEndian)
	if s.Verb == 'L' {
		order = binary.LittleEndian
	}
	if s.Bytes == 16 {
		order.PutUint64(buf[:], math.Float64bits(x))
		return fmt.Sprintf("%x", buf[:])
	}
	order.PutUint32(buf[:4], math.Float32bits(float32(x)))

	return fmt.Sprintf("%x", buf[:4])
}
