package gen

import "github.com/leapstack-labs/smartgen/pkg/model"

func (b *builder) valueObject() {
	key, kt, ok := b.keyed(KindKeyMember)
	if !ok {
		for _, k := range []Kind{KindConstructor, KindCreate, KindTryCreate, KindFactoryHook, KindEquals, KindHashCode, KindKeyComparer, KindCompareTo, KindParse, KindTryParse, KindToString} {
			b.skip(k, b.m.Key.Reason())
		}
		return
	}
	if key.Source == model.KeyGenerated {
		b.emit(KindKeyMember, &Property{
			Modifiers: []string{"public"},
			Type:      kt,
			Name:      key.Name,
		})
	}
	b.constructor(&key, &kt)

	params := []Param{{Type: kt, Name: "key"}}
	var guard []Stmt
	if maybeNull(kt) {
		guard = []Stmt{&If{Cond: &IsNull{X: ident("key")}, Then: []Stmt{
			&Throw{Value: &New{Type: typ("ArgumentNullException"), Args: []Expr{call(ident("nameof"), ident("key"))}}},
		}}}
	}
	b.factories(params, guard)

	b.keyEqualityMembers(key)
	b.keyComparerAccessor(kt)
	b.compareTo(key, kt)
	if parsable(kt) {
		b.parseMembers(kt, model.MethodCreate, model.MethodTryCreate)
	}

	var text Expr = keyOf(this(), key)
	if !kt.IsString() {
		text = call(sel(text, "ToString"))
	}
	b.emit(KindToString, &Method{
		Modifiers: []string{"public", "override"},
		Return:    typ("string"),
		Name:      "ToString",
		Expr:      text,
	})
}

func (b *builder) complexValueObject() {
	params := make([]Param, len(b.m.Members))
	c := &Constructor{Modifiers: []string{"private"}, Name: b.m.Name}
	for i, mem := range b.m.Members {
		params[i] = Param{Type: mem.Type, Name: paramName(mem.Name)}
		c.Body = append(c.Body, assign(sel(this(), mem.Name), ident(params[i].Name)))
	}
	c.Params = params
	b.emit(KindConstructor, c)
	b.factories(params, nil)
	b.memberEquality()
}

// factories emits Create, TryCreate and the partial validation hook they
// call. guard runs before the hook in Create.
func (b *builder) factories(params []Param, guard []Stmt) {
	verr := ident("validationError")
	hookArgs := []Expr{ref(verr)}
	hookParams := []Param{{Modifier: "ref", Type: typ("ValidationError?"), Name: "validationError"}}
	ctorArgs := make([]Expr, len(params))
	for i, p := range params {
		hookArgs = append(hookArgs, ref(ident(p.Name)))
		hookParams = append(hookParams, Param{Modifier: "ref", Type: p.Type, Name: p.Name})
		ctorArgs[i] = ident(p.Name)
	}
	runHook := []Stmt{
		&Local{Type: typ("ValidationError?"), Name: "validationError", Init: null()},
		&ExprStmt{X: call(ident(model.FactoryArgumentsHook), hookArgs...)},
	}
	build := &New{Type: b.self(), Args: ctorArgs}

	b.emit(KindFactoryHook, &Method{
		Modifiers: []string{"static", "partial"},
		Return:    typ("void"),
		Name:      model.FactoryArgumentsHook,
		Params:    hookParams,
	})

	create := append(append([]Stmt(nil), guard...), runHook...)
	create = append(create,
		&If{Cond: &IsNull{X: verr, Not: true}, Then: []Stmt{
			&Throw{Value: &New{Type: typ("ValidationException"), Args: []Expr{call(sel(verr, "ToString"))}}},
		}},
		ret(build),
	)
	b.emit(KindCreate, &Method{
		Modifiers: []string{"public", "static"},
		Return:    b.self(),
		Name:      model.MethodCreate,
		Params:    params,
		Body:      create,
	})

	obj := ident("obj")
	fail := []Stmt{assign(obj, zero()), ret(boolean(false))}
	var try []Stmt
	if len(guard) > 0 {
		try = append(try, &If{Cond: &IsNull{X: ident(params[0].Name)}, Then: fail})
	}
	try = append(try, runHook...)
	try = append(try,
		&If{Cond: &IsNull{X: verr, Not: true}, Then: fail},
		assign(obj, build),
		ret(boolean(true)),
	)
	tryParams := append(append([]Param(nil), params...), Param{Modifier: "out", Type: b.nullableSelf(), Name: "obj"})
	b.emit(KindTryCreate, &Method{
		Modifiers: []string{"public", "static"},
		Return:    typ("bool"),
		Name:      model.MethodTryCreate,
		Params:    tryParams,
		Body:      try,
	})
}

// memberEquality emits member-wise Equals and GetHashCode. String members
// without their own comparer use the default string comparison; when that
// is unresolved both fragments are skipped.
func (b *builder) memberEquality() {
	comparers := make([]Expr, len(b.m.Members))
	for i, mem := range b.m.Members {
		cmp, ok := b.memberComparer(mem)
		if !ok {
			reason := "default string comparison " + b.m.Comparers.DefaultStringComparison.Reason()
			b.skip(KindEquals, reason)
			b.skip(KindHashCode, reason)
			return
		}
		comparers[i] = cmp
	}

	other := ident("other")
	var body []Stmt
	if !b.isStruct() {
		body = append(body,
			&If{Cond: &IsNull{X: other}, Then: []Stmt{ret(boolean(false))}},
			&If{Cond: call(ident("ReferenceEquals"), this(), other), Then: []Stmt{ret(boolean(true))}},
		)
	}
	var all Expr = boolean(true)
	for i, mem := range b.m.Members {
		eq := call(sel(comparers[i], "Equals"), sel(this(), mem.Name), sel(other, mem.Name))
		if i == 0 {
			all = eq
		} else {
			all = &Binary{Left: all, Op: "&&", Right: eq}
		}
	}
	body = append(body, ret(all))
	b.emit(KindEquals,
		&Method{
			Modifiers: []string{"public"},
			Return:    typ("bool"),
			Name:      "Equals",
			Params:    []Param{{Type: b.nullableSelf(), Name: "other"}},
			Body:      body,
		},
		objectEquals(b.self()),
	)

	hash := []Stmt{&Local{Name: "hash", Init: &New{Type: typ("HashCode")}}}
	for i, mem := range b.m.Members {
		hash = append(hash, &ExprStmt{X: call(sel(ident("hash"), "Add"), sel(this(), mem.Name), comparers[i])})
	}
	hash = append(hash, ret(call(sel(ident("hash"), "ToHashCode"))))
	b.emit(KindHashCode, &Method{
		Modifiers: []string{"public", "override"},
		Return:    typ("int"),
		Name:      "GetHashCode",
		Body:      hash,
	})
}

func (b *builder) memberComparer(mem model.MemberDescriptor) (Expr, bool) {
	if c := b.m.Comparers.MemberComparer(mem.Name); c != nil {
		return sel(ident(c.Accessor), "EqualityComparer"), true
	}
	if mem.Type.IsString() {
		policy, ok := b.m.Comparers.DefaultStringComparison.Get()
		if !ok {
			return nil, false
		}
		return call(sel(ident("StringComparer"), "FromComparison"), ident(policy)), true
	}
	return sel(ident("EqualityComparer<"+mem.Type.String()+">"), "Default"), true
}
