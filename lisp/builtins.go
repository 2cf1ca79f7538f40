package lisp

import (
	"math"
)

// Op identifies a prelude operation.  Builtin values carry an Op code and
// the evaluator dispatches through a package-level table, keeping native
// callables out of the value domain entirely: ops are never compared or
// serialized as functions.
type Op uint

// Possible Op values
const (
	OpInvalid Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpConcat
	OpAnd
	OpOr
	OpStrictEq
	OpNumEq
	OpLT
	OpLEq
	OpGT
	OpGEq
	OpNth
	OpAppend
	OpExit
	OpRead

	numOps
)

func (op Op) String() string {
	if op >= numOps {
		return opNames[OpInvalid]
	}
	return opNames[op]
}

// apply invokes op on a list of evaluated, resolved arguments.
func (op Op) apply(env *LEnv, args []*LVal) (*LVal, error) {
	if op == OpInvalid || op >= numOps || opFuncs[op] == nil {
		return nil, NameError(ErrnoFunctionNotDefined, op.String())
	}
	return opFuncs[op](env, args)
}

// LBuiltin is a native function implementing a prelude operation.
type LBuiltin func(env *LEnv, args []*LVal) (*LVal, error)

type langBuiltin struct {
	name string
	op   Op
	fun  LBuiltin
}

var langBuiltins = []*langBuiltin{
	{"+", OpAdd, builtinAdd},
	{"-", OpSub, builtinSub},
	{"*", OpMul, builtinMul},
	{"/", OpDiv, builtinDiv},
	{"%", OpMod, builtinMod},
	{"concat", OpConcat, builtinConcat},
	{"and", OpAnd, builtinAnd},
	{"or", OpOr, builtinOr},
	{"==", OpStrictEq, builtinStrictEq},
	{"=", OpNumEq, builtinNumEq},
	{"<", OpLT, builtinLT},
	{"<=", OpLEq, builtinLEq},
	{">", OpGT, builtinGT},
	{">=", OpGEq, builtinGEq},
	{"nth", OpNth, builtinNth},
	{"append", OpAppend, builtinAppend},
	{"exit", OpExit, builtinExit},
	{"read", OpRead, builtinRead},
}

var (
	opFuncs [numOps]LBuiltin
	opNames [numOps]string
)

func init() {
	opNames[OpInvalid] = "INVALID"
	for _, def := range langBuiltins {
		opFuncs[def.op] = def.fun
		opNames[def.op] = def.name
	}
}

// epsilon is the smallest representable difference between two float64
// values near 1, used by the loose numeric comparison of `=`.
var epsilon = math.Nextafter(1, 2) - 1

func builtinAdd(env *LEnv, args []*LVal) (*LVal, error) {
	return foldFloats(args, func(a, b float64) float64 { return a + b })
}

func builtinSub(env *LEnv, args []*LVal) (*LVal, error) {
	return foldFloats(args, func(a, b float64) float64 { return a - b })
}

func builtinMul(env *LEnv, args []*LVal) (*LVal, error) {
	return foldFloats(args, func(a, b float64) float64 { return a * b })
}

func builtinDiv(env *LEnv, args []*LVal) (*LVal, error) {
	return foldFloats(args, func(a, b float64) float64 { return a / b })
}

func builtinMod(env *LEnv, args []*LVal) (*LVal, error) {
	return foldFloats(args, math.Mod)
}

func builtinConcat(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) == 0 {
		return nil, NewError(ErrnoInvalidNumberOfArguments)
	}
	acc, err := GoString(args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		s, err := GoString(arg)
		if err != nil {
			return nil, err
		}
		acc += s
	}
	return String(acc), nil
}

func builtinAnd(env *LEnv, args []*LVal) (*LVal, error) {
	return foldBools(args, func(a, b bool) bool { return a && b })
}

func builtinOr(env *LEnv, args []*LVal) (*LVal, error) {
	return foldBools(args, func(a, b bool) bool { return a || b })
}

// builtinStrictEq compares every adjacent pair of arguments for identity in
// both tag and value.  No coercion is performed.
func builtinStrictEq(env *LEnv, args []*LVal) (*LVal, error) {
	for i := 1; i < len(args); i++ {
		if !args[i-1].Equal(args[i]) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

func builtinNumEq(env *LEnv, args []*LVal) (*LVal, error) {
	return cmpFloats(args, func(a, b float64) bool { return math.Abs(a-b) < epsilon })
}

func builtinLT(env *LEnv, args []*LVal) (*LVal, error) {
	return cmpFloats(args, func(a, b float64) bool { return a < b })
}

func builtinLEq(env *LEnv, args []*LVal) (*LVal, error) {
	return cmpFloats(args, func(a, b float64) bool { return a <= b })
}

func builtinGT(env *LEnv, args []*LVal) (*LVal, error) {
	return cmpFloats(args, func(a, b float64) bool { return a > b })
}

func builtinGEq(env *LEnv, args []*LVal) (*LVal, error) {
	return cmpFloats(args, func(a, b float64) bool { return a >= b })
}

// builtinNth returns the element of a list at a given index.
func builtinNth(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, NewError(ErrnoInvalidNumberOfArguments)
	}
	lis := args[1]
	if lis.Type != LList {
		return nil, NewError(ErrnoUnexpectedType)
	}
	x, err := GoFloat(args[0])
	if err != nil {
		return nil, err
	}
	i := int(x)
	if i < 0 || i >= len(lis.Cells) {
		return nil, IndexError(i)
	}
	return lis.Cells[i], nil
}

// builtinAppend returns a new list with a value appended to the end of a
// given list.  The original list is unaffected.
func builtinAppend(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, NewError(ErrnoInvalidNumberOfArguments)
	}
	lis := args[1]
	if lis.Type != LList {
		return nil, NewError(ErrnoUnexpectedType)
	}
	cells := make([]*LVal, 0, len(lis.Cells)+1)
	cells = append(cells, lis.Cells...)
	cells = append(cells, args[0])
	return List(cells), nil
}

// builtinExit coerces its optional argument to a status code and returns a
// Terminate through the result channel.  The outer shell decides whether to
// end the process, so embedding contexts are never forced to die with it.
func builtinExit(env *LEnv, args []*LVal) (*LVal, error) {
	status := 0.0
	switch len(args) {
	case 0:
	case 1:
		x, err := GoFloat(args[0])
		if err != nil {
			return nil, err
		}
		status = x
	default:
		return nil, NewError(ErrnoInvalidNumberOfArguments)
	}
	return nil, &Terminate{Status: int(status)}
}

// builtinRead ignores its arguments and reads one line from the
// environment's input, returning it as a string including the trailing line
// terminator.
func builtinRead(env *LEnv, args []*LVal) (*LVal, error) {
	line, err := env.reader().ReadString('\n')
	if err != nil && line == "" {
		return nil, err
	}
	return String(line), nil
}

// foldFloats reduces the coerced arguments pairwise, strictly left to right.
func foldFloats(args []*LVal, fn func(a, b float64) float64) (*LVal, error) {
	if len(args) == 0 {
		return nil, NewError(ErrnoInvalidNumberOfArguments)
	}
	acc, err := GoFloat(args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		x, err := GoFloat(arg)
		if err != nil {
			return nil, err
		}
		acc = fn(acc, x)
	}
	return Number(acc), nil
}

func foldBools(args []*LVal, fn func(a, b bool) bool) (*LVal, error) {
	if len(args) == 0 {
		return nil, NewError(ErrnoInvalidNumberOfArguments)
	}
	acc, err := GoBool(args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		b, err := GoBool(arg)
		if err != nil {
			return nil, err
		}
		acc = fn(acc, b)
	}
	return Bool(acc), nil
}

// cmpFloats coerces every argument to a float and requires every adjacent
// pair to satisfy cmp.
func cmpFloats(args []*LVal, cmp func(a, b float64) bool) (*LVal, error) {
	xs := make([]float64, len(args))
	for i, arg := range args {
		x, err := GoFloat(arg)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	for i := 1; i < len(xs); i++ {
		if !cmp(xs[i-1], xs[i]) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}
