package strs

import (
	"fmt"
	"strconv"
)

// Scalar is the set of built-in types From is able to format.
type Scalar interface {
	bool | string |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64
}

// From formats a value of a built-in type as a string. Integers are formatted
// as decimal numbers and floats in the shortest form which parses back to the
// same value. Formatting does not depend on the locale.
//
// Please note that bytes and runes are numbers in Go, thus
//
//	From('x')   =>   "120"
func From[T Scalar](v T) string {
	return string(AppendFrom(nil, v))
}

// AppendFrom appends the formatted value v to dst and returns the extended
// buffer. See From.
func AppendFrom[T Scalar](dst []byte, v T) []byte {
	return appendValue(dst, v)
}

// Cat concatenates the textual representations of any number of values:
//
//	Cat("hello ", 23)               =>   "hello 23"
//	Cat("127.0.0.1", ":", 7777)     =>   "127.0.0.1:7777"
//
// Built-in scalars are formatted as with From, errors and fmt.Stringers by
// their respective methods and everything else with package fmt.
func Cat(x ...any) string {
	b := make([]byte, 0, 64)
	for _, v := range x {
		b = appendValue(b, v)
	}
	return string(b)
}

// appendValue appends the natural textual representation of v.
func appendValue(dst []byte, v any) []byte {
	switch x := v.(type) {
	case nil:
		return append(dst, "<nil>"...)
	case string:
		return append(dst, x...)
	case []byte:
		return append(dst, x...)
	case bool:
		return strconv.AppendBool(dst, x)
	case int:
		return strconv.AppendInt(dst, int64(x), 10)
	case int8:
		return strconv.AppendInt(dst, int64(x), 10)
	case int16:
		return strconv.AppendInt(dst, int64(x), 10)
	case int32:
		return strconv.AppendInt(dst, int64(x), 10)
	case int64:
		return strconv.AppendInt(dst, x, 10)
	case uint:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint8:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(dst, x, 10)
	case uintptr:
		return strconv.AppendUint(dst, uint64(x), 10)
	case float32:
		return strconv.AppendFloat(dst, float64(x), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, x, 'g', -1, 64)
	case error:
		return append(dst, x.Error()...)
	case fmt.Stringer:
		return append(dst, x.String()...)
	}
	return fmt.Append(dst, v)
}
