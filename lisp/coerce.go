package lisp

import (
	"strconv"
	"strings"
)

// Coercion rules turning a tagged value into the native scalar a builtin
// operation requires.  Lists, builtins, and lambdas never coerce; failures
// are reported as ErrnoUnexpectedType.

// GoFloat coerces v to a float64.  Strings are trimmed and parsed as decimal
// text; booleans become 1 or 0.
func GoFloat(v *LVal) (float64, error) {
	switch v.Type {
	case LNumber:
		return v.Num, nil
	case LBool:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	case LString:
		x, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, NewError(ErrnoUnexpectedType)
		}
		return x, nil
	}
	return 0, NewError(ErrnoUnexpectedType)
}

// GoString coerces v to a string.  Numbers render as decimal text and
// booleans as true/false.
func GoString(v *LVal) (string, error) {
	switch v.Type {
	case LString:
		return v.Str, nil
	case LNumber:
		return formatNum(v.Num), nil
	case LBool:
		return strconv.FormatBool(v.Bool), nil
	}
	return "", NewError(ErrnoUnexpectedType)
}

// GoBool coerces v to a bool.  Zero is false and any other number is true;
// the trimmed strings "true" and "1" are true while "false", "0", and the
// empty string are false.
func GoBool(v *LVal) (bool, error) {
	switch v.Type {
	case LBool:
		return v.Bool, nil
	case LNumber:
		return v.Num != 0, nil
	case LString:
		switch strings.TrimSpace(v.Str) {
		case "true", "1":
			return true, nil
		case "false", "0", "":
			return false, nil
		}
	}
	return false, NewError(ErrnoUnexpectedType)
}
