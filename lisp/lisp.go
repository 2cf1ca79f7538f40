package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LType is the type tag of an LVal.
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNumber
	LString
	LSymbol
	LBool
	LList
	LFun
	LLambda

	numLTypes
)

func (t LType) String() string {
	ltypeStrings := [numLTypes]string{
		LInvalid: "INVALID",
		LNumber:  "number",
		LString:  "string",
		LSymbol:  "symbol",
		LBool:    "bool",
		LList:    "list",
		LFun:     "function",
		LLambda:  "lambda",
	}
	if t >= numLTypes {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LVal is a rusht value, the tagged union shared by parser output and
// evaluator input/output.  Builtin values carry an Op code rather than a
// function pointer so the value domain stays plain data (see Op).  The zero
// LVal is invalid; use the constructor functions.
type LVal struct {
	Type LType
	Num  float64
	Str  string
	Bool bool

	// Cells holds the ordered elements of a list value.
	Cells []*LVal

	// Fields used by callable values
	Op      Op       // builtin operation, when Type is LFun
	Formals []string // parameter names, when Type is LLambda
	Body    *LVal    // owned body expression, when Type is LLambda
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// Symbol returns an LVal representing the identifier s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: b,
	}
}

// List returns an LVal representing the list with the given cells.
func List(cells []*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Builtin returns an LVal representing the prelude operation op.
func Builtin(op Op) *LVal {
	return &LVal{
		Type: LFun,
		Op:   op,
	}
}

// Lambda returns an LVal representing a user-defined function taking the
// named formals and evaluating body.  The body is exclusively owned by the
// returned value.
func Lambda(formals []string, body *LVal) *LVal {
	return &LVal{
		Type:    LLambda,
		Formals: formals,
		Body:    body,
	}
}

// Copy creates a deep copy of the receiver.
func (v *LVal) Copy() *LVal {
	if v == nil {
		return nil
	}
	cp := &LVal{}
	*cp = *v                 // shallow copy of all fields
	cp.Cells = v.copyCells() // deep copy of v.Cells
	cp.Body = v.Body.Copy()
	if v.Formals != nil {
		cp.Formals = append([]string(nil), v.Formals...)
	}
	return cp
}

func (v *LVal) copyCells() []*LVal {
	if len(v.Cells) == 0 {
		return nil
	}
	cells := make([]*LVal, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}

// Equal returns true when v and u are identical in both tag and value.
// Lists and lambdas compare structurally; builtins compare by op code.
func (v *LVal) Equal(u *LVal) bool {
	if v.Type != u.Type {
		return false
	}
	switch v.Type {
	case LNumber:
		return v.Num == u.Num
	case LString, LSymbol:
		return v.Str == u.Str
	case LBool:
		return v.Bool == u.Bool
	case LList:
		if len(v.Cells) != len(u.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(u.Cells[i]) {
				return false
			}
		}
		return true
	case LFun:
		return v.Op == u.Op
	case LLambda:
		if len(v.Formals) != len(u.Formals) {
			return false
		}
		for i := range v.Formals {
			if v.Formals[i] != u.Formals[i] {
				return false
			}
		}
		return v.Body.Equal(u.Body)
	}
	return false
}

func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		return formatNum(v.Num)
	case LString:
		return `"` + v.Str + `"`
	case LSymbol:
		return v.Str
	case LBool:
		return strconv.FormatBool(v.Bool)
	case LList:
		return exprString(v.Cells)
	case LFun:
		return fmt.Sprintf("<builtin ``%s''>", v.Op)
	case LLambda:
		return fmt.Sprintf("λ %s -> %s", formalsString(v.Formals), v.Body)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// formatNum renders a float the way the REPL displays numbers, without a
// trailing fractional part for integral values.
func formatNum(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func formalsString(formals []string) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for i, name := range formals {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(name)
	}
	buf.WriteString(")")
	return buf.String()
}

func exprString(cells []*LVal) string {
	if len(cells) == 0 {
		return "()"
	}
	var buf bytes.Buffer
	buf.WriteString("(")
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(")")
	return buf.String()
}
