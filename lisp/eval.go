package lisp

// Eval reduces v to a value in the context of env.  Evaluation is purely
// synchronous and recursion depth equals the nesting depth of the source
// expression.
func (env *LEnv) Eval(v *LVal) (*LVal, error) {
	switch v.Type {
	case LNumber, LString, LBool, LFun, LLambda:
		return v, nil
	case LSymbol:
		// A bare identifier standing alone evaluates to itself.  Identifiers
		// are only resolved against the environment when they appear in the
		// operator position or as arguments inside a list.
		return v, nil
	case LList:
		return env.evalList(v)
	default:
		return nil, NewError(ErrnoUnexpectedType)
	}
}

// evalList dispatches a list expression on its first element: a special form
// name, a prelude builtin, or a user-defined lambda.
func (env *LEnv) evalList(v *LVal) (*LVal, error) {
	if len(v.Cells) == 0 {
		return nil, NewError(ErrnoEmptyListExpression)
	}
	head := v.Cells[0]
	if head.Type != LSymbol {
		return nil, NameError(ErrnoNotAnIdentifier, head.String())
	}
	args := v.Cells[1:]
	switch head.Str {
	case DefSymbol:
		return env.opDef(args)
	case FuncSymbol:
		return env.opFunc(args)
	case QuoteSymbol:
		return env.opQuote(args)
	case IfSymbol:
		return env.opIf(args)
	}

	f, ok := env.Get(head.Str)
	if !ok {
		return nil, NameError(ErrnoFunctionNotDefined, head.Str)
	}
	switch f.Type {
	case LFun:
		vals, err := env.evalArgs(args)
		if err != nil {
			return nil, err
		}
		return f.Op.apply(env, vals)
	case LLambda:
		return env.call(f, args)
	default:
		return nil, NewError(ErrnoUnexpectedType)
	}
}

// evalArgs evaluates each argument left to right, short-circuiting on the
// first failure, and then resolves any resulting bare identifiers against
// env.  An identifier that resolves to a builtin cannot be used as data.
func (env *LEnv) evalArgs(args []*LVal) ([]*LVal, error) {
	vals := make([]*LVal, len(args))
	for i, arg := range args {
		v, err := env.Eval(arg)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	for i, v := range vals {
		if v.Type != LSymbol {
			continue
		}
		bound, ok := env.Get(v.Str)
		if !ok {
			return nil, NameError(ErrnoVariableNotDefined, v.Str)
		}
		if bound.Type == LFun {
			return nil, NameError(ErrnoFunctionAsVariable, v.Str)
		}
		vals[i] = bound
	}
	return vals, nil
}

// call invokes the lambda f.  Arguments are evaluated in the caller's
// environment and bound to the formals in a copy of it, so nothing the body
// does affects the caller's own bindings.
func (env *LEnv) call(f *LVal, args []*LVal) (*LVal, error) {
	if len(args) != len(f.Formals) {
		return nil, NewError(ErrnoInvalidNumberOfArguments)
	}
	vals, err := env.evalArgs(args)
	if err != nil {
		return nil, err
	}
	local := env.Copy()
	for i, name := range f.Formals {
		local.Put(name, vals[i])
	}
	return local.Eval(f.Body)
}
