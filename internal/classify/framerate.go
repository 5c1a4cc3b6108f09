package classify

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rational is a numerator/denominator pair as ffprobe prints it ("24000/1001").
type Rational struct {
	Num int64
	Den int64
}

// ParseRational parses "N/D" or a bare integer. Malformed input yields the
// zero Rational, which every consumer treats as degenerate.
func ParseRational(s string) Rational {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}
	}
	num, den, found := strings.Cut(s, "/")
	n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
	if err != nil {
		return Rational{}
	}
	if !found {
		return Rational{Num: n, Den: 1}
	}
	d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
	if err != nil {
		return Rational{}
	}
	return Rational{Num: n, Den: d}
}

// Degenerate reports whether r cannot be used as a rate (0/0, N/0,
// negative, or a numerator too large to scale to thousandths).
func (r Rational) Degenerate() bool {
	return r.Den <= 0 || r.Num <= 0 || r.Num > maxRateNum
}

// maxRateNum is the largest numerator FrameRate can scale without overflow.
const maxRateNum = math.MaxInt64 / 1000

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// FrameRate returns floor(num*1000/den), the rate in thousandths of a frame
// per second (23976 for 24000/1001). A non-positive denominator, a negative
// numerator, or a numerator too large to scale yields 0.
func FrameRate(num, den int64) int {
	if den <= 0 || num < 0 || num > maxRateNum {
		return 0
	}
	return int(num * 1000 / den)
}

// FrameRateOf is FrameRate for a Rational.
func FrameRateOf(r Rational) int {
	return FrameRate(r.Num, r.Den)
}

// FrameRateType tells constant from variable frame rate.
type FrameRateType int

const (
	FrameRateUnknown FrameRateType = iota
	FrameRateConstant
	FrameRateVariable
)

// FrameRateTypeOf compares the average frame rate against the real base
// rate (ffprobe's avg_frame_rate and r_frame_rate). A degenerate average is
// Unknown. When the base rate is absent or matches the average the stream is
// Constant; a mismatch means frame durations vary.
func FrameRateTypeOf(avg, real Rational) FrameRateType {
	if avg.Degenerate() {
		return FrameRateUnknown
	}
	if real.Degenerate() || FrameRateOf(real) == FrameRateOf(avg) {
		return FrameRateConstant
	}
	return FrameRateVariable
}

func (t FrameRateType) String() string {
	switch t {
	case FrameRateConstant:
		return "Constant"
	case FrameRateVariable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// FormatFrameRate renders a fixed-point rate with trailing fractional zeros
// stripped: 24000 → "24", 23976 → "23.976", 29970 → "29.97".
func FormatFrameRate(fr int) string {
	if fr < 0 {
		fr = 0
	}
	whole, frac := fr/1000, fr%1000
	if frac == 0 {
		return strconv.Itoa(whole)
	}
	return strconv.Itoa(whole) + "." + strings.TrimRight(fmt.Sprintf("%03d", frac), "0")
}

// FormatFrameRateFixed renders a fixed-point rate with all three decimals.
func FormatFrameRateFixed(fr int) string {
	if fr < 0 {
		fr = 0
	}
	return fmt.Sprintf("%d.%03d", fr/1000, fr%1000)
}
