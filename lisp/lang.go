package lisp

// Special form names.  These are recognized by the evaluator in the operator
// position of a list and cannot be shadowed or overridden.
const (
	// DefSymbol binds a value to a literal identifier.
	DefSymbol = "def"
	// FuncSymbol constructs an anonymous function.
	FuncSymbol = "func"
	// QuoteSymbol suppresses evaluation of its arguments.
	QuoteSymbol = "quote"
	// IfSymbol selects a branch, evaluating only the branch selected.
	IfSymbol = "if"
)
