package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/wippyai/jdecomp/errors"
	"github.com/wippyai/jdecomp/metadata"
	"github.com/wippyai/jdecomp/output"
)

// WritePrimitiveValue writes a literal value: a metadata constant or the matching
// Go value (nil, bool, string, integers and floats). Strings and chars are escaped;
// non-ASCII characters are kept only when unicode is set.
func WritePrimitiveValue(out output.Output, value any, unicode bool) error {
	if out == nil {
		return errors.NilPointer(errors.PhaseFormat, []string{"output"}, "Output")
	}

	switch v := value.(type) {
	case nil, metadata.NullConstant:
		out.WriteKeyword("null")
	case bool:
		writeBool(out, v)
	case metadata.BoolConstant:
		writeBool(out, bool(v))
	case string:
		out.WriteTextLiteral(Escape(v, '"', unicode))
	case metadata.StringConstant:
		out.WriteTextLiteral(Escape(string(v), '"', unicode))
	case metadata.CharConstant:
		out.WriteTextLiteral(escapeChar(uint16(v), unicode))
	case float32:
		writeFloat(out, v)
	case metadata.FloatConstant:
		writeFloat(out, float32(v))
	case float64:
		writeDouble(out, v)
	case metadata.DoubleConstant:
		writeDouble(out, float64(v))
	case int64:
		out.WriteLiteral(strconv.FormatInt(v, 10) + "L")
	case metadata.LongConstant:
		out.WriteLiteral(strconv.FormatInt(int64(v), 10) + "L")
	case metadata.IntConstant:
		out.WriteLiteral(strconv.FormatInt(int64(v), 10))
	case int:
		out.WriteLiteral(strconv.Itoa(v))
	case int32:
		out.WriteLiteral(strconv.FormatInt(int64(v), 10))
	case int16:
		out.WriteLiteral(strconv.FormatInt(int64(v), 10))
	case int8:
		out.WriteLiteral(strconv.FormatInt(int64(v), 10))
	default:
		return errors.UnsupportedOperand(errors.PhaseFormat, "", value)
	}
	return nil
}

func writeBool(out output.Output, v bool) {
	if v {
		out.WriteKeyword("true")
		return
	}
	out.WriteKeyword("false")
}

func writeFloat(out output.Output, v float32) {
	f := float64(v)
	if writeSpecialFloat(out, f, metadata.BoxedFloat) {
		return
	}
	out.WriteLiteral(javaFloatString(f, 32) + "f")
}

func writeDouble(out output.Output, v float64) {
	if writeSpecialFloat(out, v, metadata.BoxedDouble) {
		return
	}
	s := javaFloatString(v, 64)
	if !strings.ContainsAny(s, ".E") {
		s += "d"
	}
	out.WriteLiteral(s)
}

// writeSpecialFloat writes infinities and NaN as constants of the boxed type.
func writeSpecialFloat(out output.Output, v float64, boxed *metadata.TypeDefinition) bool {
	var name string
	switch {
	case math.IsInf(v, 1):
		name = "POSITIVE_INFINITY"
	case math.IsInf(v, -1):
		name = "NEGATIVE_INFINITY"
	case math.IsNaN(v):
		name = "NaN"
	default:
		return false
	}
	out.WriteReference(boxed.SimpleName(), boxed, false)
	out.WriteDelimiter(".")
	out.Write(name)
	return true
}

// FloatString formats v the way Float.toString does, without a suffix.
func FloatString(v float32) string {
	return specialOr(float64(v), 32)
}

// DoubleString formats v the way Double.toString does, without a suffix.
func DoubleString(v float64) string {
	return specialOr(v, 64)
}

func specialOr(v float64, bitSize int) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	return javaFloatString(v, bitSize)
}

// javaFloatString formats a finite value the way Float.toString and Double.toString
// do: the shortest digits that round-trip, in plain notation for magnitudes in
// [1e-3, 1e7) and computerized scientific notation otherwise ("1.0E10", "1.5E-5").
// There is always at least one digit after the decimal point.
func javaFloatString(v float64, bitSize int) string {
	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, bitSize)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}

	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mantissa + "E" + exp
}
