package model

// Method names the generator emits on annotated types.
const (
	MethodGet       = "Get"
	MethodTryGet    = "TryGet"
	MethodValidate  = "Validate"
	MethodCreate    = "Create"
	MethodTryCreate = "TryCreate"
	MethodParse     = "Parse"
	MethodTryParse  = "TryParse"
	MethodSwitch    = "Switch"
	MethodMap       = "Map"
)

// ReservedNames returns the member names the generator may emit for m, in
// a fixed order. Item and variant names must not collide with any of them.
func ReservedNames(m *TypeModel) []string {
	switch {
	case m.Category.IsEnum():
		names := []string{
			ItemsAccessorName, m.KeyName(), MethodGet, MethodTryGet,
			MethodParse, MethodTryParse, MethodSwitch, MethodMap,
			KeyEqualityAccessor, KeyOrderingAccessor,
		}
		if m.IsValidatable() {
			names = append(names, MethodValidate, InvalidItemFactory, IsValidPropertyName)
		}
		return names
	case m.Category == CategoryUnion:
		return []string{MethodSwitch, MethodMap}
	}
	return nil
}
