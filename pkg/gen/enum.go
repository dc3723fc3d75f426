package gen

import (
	"slices"
	"sort"

	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func (b *builder) enum() {
	m := b.m
	b.items()

	key, kt, ok := b.keyed(KindKeyMember)
	if ok && key.Source == model.KeyGenerated {
		b.emit(KindKeyMember, &Property{
			Modifiers: []string{"public"},
			Type:      kt,
			Name:      key.Name,
		})
	}

	lookup := []Kind{KindConstructor, KindGet, KindTryGet, KindEquals, KindHashCode, KindKeyComparer}
	if m.IsValidatable() {
		lookup = append(lookup, KindValidate, KindInvalidItem)
	}
	if !ok {
		degraded := append(slices.Clone(lookup[1:]), KindCompareTo, KindParse, KindTryParse)
		for _, k := range degraded {
			b.skip(k, m.Key.Reason())
		}
		b.constructor(nil, nil)
	} else {
		b.constructor(&key, &kt)
		b.enumGet(kt)
		b.enumTryGet(key, kt)
		if m.IsValidatable() {
			b.enumValidate(kt)
			b.invalidItem(kt)
		}
		b.keyEqualityMembers(key)
		b.keyComparerAccessor(kt)
		b.compareTo(key, kt)
		if parsable(kt) {
			b.parseMembers(kt, model.MethodGet, model.MethodTryGet)
		}
	}

	names := make([]string, len(m.Items))
	for i, it := range m.Items {
		names[i] = it.Name
	}
	b.dispatch(names, nil)
	b.delegates()
}

// items emits the Items list in declaration order.
func (b *builder) items() {
	elems := make([]Expr, len(b.m.Items))
	for i, it := range b.m.Items {
		elems[i] = ident(it.Name)
	}
	b.emit(KindItems, &Property{
		Modifiers: []string{"public", "static"},
		Type:      typ("IReadOnlyList", b.self()),
		Name:      model.ItemsAccessorName,
		Init:      &ArrayLit{Elem: b.self(), Elems: elems},
	})
}

// constructor emits the private constructor. key is nil when the key is
// unresolved; the constructor then only wires delegates.
func (b *builder) constructor(key *model.KeyMember, kt *syntax.TypeRef) {
	c := &Constructor{Modifiers: []string{"private"}, Name: b.m.Name}
	if key != nil {
		c.Params = append(c.Params, Param{Type: *kt, Name: "key"})
		if !key.IsMethod {
			c.Body = append(c.Body, assign(sel(this(), key.Name), ident("key")))
		}
	}
	if b.m.IsValidatable() && key != nil {
		c.Params = append(c.Params, Param{Type: typ("bool"), Name: "isValid", Default: boolean(true)})
		c.Body = append(c.Body, assign(sel(this(), model.IsValidPropertyName), ident("isValid")))
	}
	for _, d := range b.m.DelegateMethods {
		name := paramName(d.Name)
		c.Params = append(c.Params, Param{Type: delegateType(d), Name: name})
		c.Body = append(c.Body, assign(sel(this(), delegateField(d)), ident(name)))
	}
	b.emit(KindConstructor, c)
}

func (b *builder) enumGet(kt syntax.TypeRef) {
	var fail Stmt
	if b.m.IsValidatable() {
		fail = ret(call(ident(model.InvalidItemFactory), ident("key")))
	} else {
		fail = &Throw{Value: &New{
			Type: typ("UnknownEnumIdentifierException"),
			Args: []Expr{&TypeOf{Type: b.self()}, ident("key")},
		}}
	}
	b.emit(KindGet, &Method{
		Modifiers: []string{"public", "static"},
		Return:    b.self(),
		Name:      model.MethodGet,
		Params:    []Param{{Type: kt, Name: "key"}},
		Body: []Stmt{
			&If{
				Cond: call(ident(model.MethodTryGet), ident("key"), out(&VarExpr{Name: "item"})),
				Then: []Stmt{ret(ident("item"))},
			},
			fail,
		},
	})
}

// enumTryGet compares the key against every item in declaration order and
// returns the first match.
func (b *builder) enumTryGet(key model.KeyMember, kt syntax.TypeRef) {
	k, item := ident("key"), ident("item")
	var body []Stmt
	if maybeNull(kt) {
		body = append(body, &If{Cond: &IsNull{X: k}, Then: []Stmt{assign(item, zero()), ret(boolean(false))}})
	}
	for _, it := range b.m.Items {
		body = append(body, &If{
			Cond: call(sel(ident(model.KeyEqualityAccessor), "Equals"), keyOf(ident(it.Name), key), k),
			Then: []Stmt{assign(item, ident(it.Name)), ret(boolean(true))},
		})
	}
	body = append(body, assign(item, zero()), ret(boolean(false)))
	b.emit(KindTryGet, &Method{
		Modifiers: []string{"public", "static"},
		Return:    typ("bool"),
		Name:      model.MethodTryGet,
		Params: []Param{
			{Type: kt, Name: "key"},
			{Modifier: "out", Type: b.nullableSelf(), Name: "item"},
		},
		Body: body,
	})
}

func (b *builder) enumValidate(kt syntax.TypeRef) {
	k, item := ident("key"), ident("item")
	b.emit(KindValidate,
		&Property{
			Modifiers: []string{"public"},
			Type:      typ("bool"),
			Name:      model.IsValidPropertyName,
		},
		&Method{
			Modifiers: []string{"public", "static"},
			Return:    typ("ValidationError?"),
			Name:      model.MethodValidate,
			Params: []Param{
				{Type: kt, Name: "key"},
				{Modifier: "out", Type: b.self(), Name: "item"},
			},
			Body: []Stmt{
				&If{Cond: call(ident(model.MethodTryGet), k, out(item)), Then: []Stmt{ret(null())}},
				assign(item, call(ident(model.InvalidItemFactory), k)),
				ret(&New{
					Type: typ("ValidationError"),
					Args: []Expr{&Binary{
						Left:  &Binary{Left: str("There is no item of type '" + b.m.Name + "' with the identifier '"), Op: "+", Right: k},
						Op:    "+",
						Right: str("'."),
					}},
				}),
			},
		},
	)
}

// invalidItem emits the invalid item factory unless the type declares one.
// Abstract types and types whose constructor needs delegates get a
// throwing stub the user overrides.
func (b *builder) invalidItem(kt syntax.TypeRef) {
	if b.m.HasInvalidItemFactory {
		return
	}
	fn := &Method{
		Modifiers: []string{"private", "static"},
		Return:    b.self(),
		Name:      model.InvalidItemFactory,
		Params:    []Param{{Type: kt, Name: "key"}},
	}
	if b.m.IsAbstract || len(b.m.DelegateMethods) > 0 {
		fn.Expr = &ThrowExpr{Value: &New{
			Type: typ("NotImplementedException"),
			Args: []Expr{str(b.m.Name + " must create an invalid item")},
		}}
	} else {
		fn.Expr = &New{Type: b.self(), Args: []Expr{ident("key"), boolean(false)}}
	}
	b.emit(KindInvalidItem, fn)
}

// delegates emits a backing field and a forwarding implementation per
// delegate method.
func (b *builder) delegates() {
	for _, d := range b.m.DelegateMethods {
		args := make([]Expr, len(d.Params))
		params := make([]Param, len(d.Params))
		for i, p := range d.Params {
			args[i] = ident(p.Name)
			params[i] = Param{Type: p.Type, Name: p.Name}
		}
		b.emit(KindDelegate,
			&Field{
				Modifiers: []string{"private", "readonly"},
				Type:      delegateType(d),
				Name:      delegateField(d),
			},
			&Method{
				Modifiers:  []string{"public", "partial"},
				Return:     d.ReturnType,
				Name:       d.Name,
				TypeParams: d.TypeParams,
				Params:     params,
				Expr:       call(sel(this(), delegateField(d)), args...),
			},
		)
	}
}

func delegateField(d model.DelegateMethod) string {
	return "_" + lowerFirst(d.Name)
}

// delegateType is Func<params..., ret>, or Action<params...> for void methods.
func delegateType(d model.DelegateMethod) syntax.TypeRef {
	args := make([]syntax.TypeRef, 0, len(d.Params)+1)
	for _, p := range d.Params {
		args = append(args, p.Type)
	}
	if d.ReturnType.IsZero() || d.ReturnType.Name == "void" {
		return typ("Action", args...)
	}
	return typ("Func", append(args, d.ReturnType)...)
}

// dispatch emits the exhaustive Switch and Map helpers. Enum items are
// matched by reference; union variants by type when variants is set.
func (b *builder) dispatch(names []string, variants []model.NestedTypeDescriptor) {
	if len(names) == 0 {
		reason := "no items"
		if b.m.Category == model.CategoryUnion {
			reason = "no variants"
		}
		b.skip(KindSwitch, reason)
		b.skip(KindMap, reason)
		return
	}

	var switchParams, mapParams []Param
	conds := make([]Expr, len(names))
	args := make([][]Expr, len(names))
	for i, name := range names {
		p := paramName(name)
		if variants != nil {
			v := p + "Value"
			conds[i] = &IsType{X: this(), Type: typ(variants[i].Name), Name: v}
			args[i] = []Expr{ident(v)}
			switchParams = append(switchParams, Param{Type: typ("Action", typ(variants[i].Name)), Name: p})
		} else {
			conds[i] = call(ident("ReferenceEquals"), this(), ident(name))
			switchParams = append(switchParams, Param{Type: typ("Action"), Name: p})
		}
		mapParams = append(mapParams, Param{Type: typ("TResult"), Name: p})
	}

	// Deeper variants are tested first so a concrete base does not shadow them.
	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	if variants != nil {
		sort.SliceStable(order, func(i, j int) bool {
			return variants[order[i]].Depth > variants[order[j]].Depth
		})
	}

	var switchBody, mapBody []Stmt
	for _, i := range order {
		p := switchParams[i].Name
		switchBody = append(switchBody, &If{Cond: conds[i], Then: []Stmt{&ExprStmt{X: call(ident(p), args[i]...)}, &Return{}}})
		mapBody = append(mapBody, &If{Cond: conds[i], Then: []Stmt{ret(ident(p))}})
	}
	unknown := &Throw{Value: &New{
		Type: typ("ArgumentOutOfRangeException"),
		Args: []Expr{str(b.m.Name), str("Unknown " + b.m.Name + " value.")},
	}}
	switchBody = append(switchBody, unknown)
	mapBody = append(mapBody, unknown)

	b.emit(KindSwitch, &Method{
		Modifiers: []string{"public"},
		Return:    typ("void"),
		Name:      model.MethodSwitch,
		Params:    switchParams,
		Body:      switchBody,
	})
	b.emit(KindMap, &Method{
		Modifiers:  []string{"public"},
		Return:     typ("TResult"),
		Name:       model.MethodMap,
		TypeParams: []string{"TResult"},
		Params:     mapParams,
		Body:       mapBody,
	})
}
