package strs

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"syscall"
)

// Errno is an error code describing the outcome of a conversion.
type Errno int

// Error codes for conversions. EINVAL and ERANGE carry the platform's values
// of the respective C error numbers.
const (
	OK     Errno = 0
	EINVAL       = Errno(syscall.EINVAL)
	ERANGE       = Errno(syscall.ERANGE)
)

func (e Errno) String() string {
	switch e {
	case OK:
		return "ok"
	case EINVAL:
		return ErrInvalidFormat.Error()
	case ERANGE:
		return ErrOutOfRange.Error()
	}
	return fmt.Sprintf("Errno(%d)", int(e))
}

// Code maps an error returned by one of the Parse functions to an error code.
// A nil error maps to OK. Errors unknown to this package map to EINVAL.
func Code(err error) Errno {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, ErrOutOfRange):
		return ERANGE
	}
	return EINVAL
}

// --- Parsing ---------------------------------------------------------------

// ParseBool converts "true" or "1" to true and "false" or "0" to false.
// Matching is case-sensitive; any other input is an ErrInvalidFormat.
func ParseBool[S Text](s S) (bool, error) {
	switch str := string(s); str {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, conversionError(str, "bool", ErrInvalidFormat)
	}
}

// ParseInt32 converts s to an int32. See ParseInt64 for the accepted syntax.
func ParseInt32[S Text](s S) (int32, error) {
	n, err := parseSigned(string(s), 32, "int32")
	return int32(n), err
}

// ParseInt64 converts s to an int64.
//
// s consists of an optional sign, decimal digits or hexadecimal digits
// following a "0x" prefix, and an optional binary unit suffix, one of k, m,
// g, t or p (case does not matter), scaling the value by 2^10 … 2^50:
//
//	"-42"   =>   -42
//	"0x1f"  =>   31
//	"8k"    =>   8192
//
// White space, digit separators or other characters are not permitted and
// result in ErrInvalidFormat. Values not representable as int64 result in
// ErrOutOfRange. In both cases, 0 is returned.
func ParseInt64[S Text](s S) (int64, error) {
	return parseSigned(string(s), 64, "int64")
}

// ParseUint32 converts s to a uint32. See ParseUint64 for the accepted syntax.
func ParseUint32[S Text](s S) (uint32, error) {
	n, err := parseUnsigned(string(s), 32, "uint32")
	return uint32(n), err
}

// ParseUint64 converts s to a uint64. The syntax is the same as for
// ParseInt64, except that no sign is allowed.
func ParseUint64[S Text](s S) (uint64, error) {
	return parseUnsigned(string(s), 64, "uint64")
}

// ParseDouble converts s to a float64, accepting Go floating-point literal
// syntax. Values overflowing the float64 range result in ErrOutOfRange
// instead of an infinite value.
func ParseDouble[S Text](s S) (float64, error) {
	str := string(s)
	if str == "" || strings.IndexByte(str, '_') >= 0 {
		return 0, conversionError(str, "double", ErrInvalidFormat)
	}
	f, err := strconv.ParseFloat(str, 64)
	switch {
	case err == nil:
		return f, nil
	case !errors.Is(err, strconv.ErrRange):
		return 0, conversionError(str, "double", ErrInvalidFormat)
	case math.IsInf(f, 0):
		return 0, conversionError(str, "double", ErrOutOfRange)
	}
	return f, nil // underflow rounds towards zero
}

func parseSigned(s string, bitSize int, target string) (int64, error) {
	digits, neg := s, false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		digits, neg = s[1:], s[0] == '-'
	}
	u, err := parseMagnitude(digits)
	if err != nil {
		return 0, conversionError(s, target, err)
	}
	limit := uint64(1) << (bitSize - 1)
	if neg {
		if u > limit {
			return 0, conversionError(s, target, ErrOutOfRange)
		}
		return -int64(u), nil
	}
	if u > limit-1 {
		return 0, conversionError(s, target, ErrOutOfRange)
	}
	return int64(u), nil
}

func parseUnsigned(s string, bitSize int, target string) (uint64, error) {
	u, err := parseMagnitude(s)
	if err != nil {
		return 0, conversionError(s, target, err)
	}
	if bitSize < 64 && u > uint64(1)<<bitSize-1 {
		return 0, conversionError(s, target, ErrOutOfRange)
	}
	return u, nil
}

// parseMagnitude parses an unsigned number with optional hex prefix and unit
// suffix.
func parseMagnitude(s string) (uint64, error) {
	if s == "" || s[0] == '+' || s[0] == '-' || strings.IndexByte(s, '_') >= 0 {
		return 0, ErrInvalidFormat
	}
	shift := unitShift(s[len(s)-1])
	if shift > 0 {
		s = s[:len(s)-1]
	}
	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	if s == "" {
		return 0, ErrInvalidFormat
	}
	u, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOutOfRange
		}
		return 0, ErrInvalidFormat
	}
	if u > math.MaxUint64>>shift {
		return 0, ErrOutOfRange
	}
	return u << shift, nil
}

func unitShift(c byte) uint {
	switch c {
	case 'k', 'K':
		return 10
	case 'm', 'M':
		return 20
	case 'g', 'G':
		return 30
	case 't', 'T':
		return 40
	case 'p', 'P':
		return 50
	}
	return 0
}

func conversionError(s string, target string, cause error) error {
	tracer().Debugf("conversion of %q to %s failed: %v", s, target, cause)
	return fmt.Errorf("strs: cannot convert %q to %s: %w", s, target, cause)
}

// --- Converter -------------------------------------------------------------

// Converter converts strings to built-in types and remembers the outcome of
// the most recent conversion. On failure, conversions return false or 0, which
// is ambiguous for inputs like "0". Clients check Errno to tell them apart:
//
//	var c strs.Converter
//	if n := strs.ToInt32(&c, s); n == 0 && c.Errno() != strs.OK {
//	    …
//	}
//
// Every conversion overwrites the error code, setting it to OK on success.
// The zero value is ready to use. A Converter must not be shared between
// goroutines; each goroutine should use its own.
type Converter struct {
	err error
}

// Errno returns the error code of the most recent conversion.
func (c *Converter) Errno() Errno {
	return Code(c.err)
}

// Err returns the error of the most recent conversion, or nil.
func (c *Converter) Err() error {
	return c.err
}

// ToBool converts s to a bool and records the outcome in c, see ParseBool.
func ToBool[S Text](c *Converter, s S) bool {
	v, err := ParseBool(s)
	c.err = err
	return v
}

// ToInt32 converts s to an int32 and records the outcome in c, see ParseInt32.
func ToInt32[S Text](c *Converter, s S) int32 {
	v, err := ParseInt32(s)
	c.err = err
	return v
}

// ToInt64 converts s to an int64 and records the outcome in c, see ParseInt64.
func ToInt64[S Text](c *Converter, s S) int64 {
	v, err := ParseInt64(s)
	c.err = err
	return v
}

// ToUint32 converts s to a uint32 and records the outcome in c, see ParseUint32.
func ToUint32[S Text](c *Converter, s S) uint32 {
	v, err := ParseUint32(s)
	c.err = err
	return v
}

// ToUint64 converts s to a uint64 and records the outcome in c, see ParseUint64.
func ToUint64[S Text](c *Converter, s S) uint64 {
	v, err := ParseUint64(s)
	c.err = err
	return v
}

// ToDouble converts s to a float64 and records the outcome in c, see ParseDouble.
func ToDouble[S Text](c *Converter, s S) float64 {
	v, err := ParseDouble(s)
	c.err = err
	return v
}
