package lisp

// Special form implementations.  Unlike prelude builtins these receive their
// arguments unevaluated and decide themselves what to evaluate.

// opDef implements (def <name> <value-expr>).  The name must be a literal
// identifier, not a computed one; the value expression is evaluated in the
// current environment and the bound value is returned.
func (env *LEnv) opDef(args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, NewError(ErrnoInvalidNumberOfArguments)
	}
	name := args[0]
	if name.Type != LSymbol {
		return nil, NameError(ErrnoNotAnIdentifier, name.String())
	}
	vals, err := env.evalArgs(args[1:])
	if err != nil {
		return nil, err
	}
	env.Put(name.Str, vals[0])
	return vals[0], nil
}

// opFunc implements (func (<param> ...) <body-expr>), producing an
// unevaluated lambda value.  Every element of the parameter list must be an
// identifier.
func (env *LEnv) opFunc(args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, NewError(ErrnoInvalidNumberOfArguments)
	}
	params := args[0]
	if params.Type != LList {
		return nil, NewError(ErrnoUnexpectedType)
	}
	formals := make([]string, len(params.Cells))
	for i, p := range params.Cells {
		if p.Type != LSymbol {
			return nil, NewError(ErrnoUnexpectedType)
		}
		formals[i] = p.Str
	}
	return Lambda(formals, args[1].Copy()), nil
}

// opQuote implements (quote ...), returning the remainder of the list
// unevaluated.  A single argument is returned as is; multiple arguments are
// wrapped back into a list.
func (env *LEnv) opQuote(args []*LVal) (*LVal, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return List(args), nil
}

// opIf implements (if <cond> <on-true> <on-false>) with lazy branches: the
// condition is evaluated and coerced to a boolean, then only the selected
// branch is evaluated.
func (env *LEnv) opIf(args []*LVal) (*LVal, error) {
	if len(args) != 3 {
		return nil, NewError(ErrnoInvalidNumberOfArguments)
	}
	vals, err := env.evalArgs(args[:1])
	if err != nil {
		return nil, err
	}
	cond, err := GoBool(vals[0])
	if err != nil {
		return nil, err
	}
	branch := args[2]
	if cond {
		branch = args[1]
	}
	vals, err = env.evalArgs([]*LVal{branch})
	if err != nil {
		return nil, err
	}
	return vals[0], nil
}
