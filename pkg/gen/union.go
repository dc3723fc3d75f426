package gen

import "github.com/leapstack-labs/smartgen/pkg/model"

// union emits the private constructor and the dispatch helpers over the
// concrete variants in declaration order.
func (b *builder) union() {
	b.emit(KindConstructor, &Constructor{Modifiers: []string{"private"}, Name: b.m.Name})

	var names []string
	var variants []model.NestedTypeDescriptor
	for _, v := range b.m.Variants {
		if v.IsAbstract {
			continue
		}
		names = append(names, v.Name)
		variants = append(variants, v)
	}
	b.dispatch(names, variants)
}
