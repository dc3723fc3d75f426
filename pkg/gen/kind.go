package gen

// Kind names a generated fragment. Rules refer to kinds when they block
// generation.
type Kind = string

// Fragment kinds in output order.
const (
	KindItems       Kind = "items"
	KindKeyMember   Kind = "key_member"
	KindConstructor Kind = "constructor"
	KindGet         Kind = "get"
	KindTryGet      Kind = "try_get"
	KindValidate    Kind = "validate"
	KindInvalidItem Kind = "invalid_item"
	KindCreate      Kind = "create"
	KindTryCreate   Kind = "try_create"
	KindFactoryHook Kind = "factory_hook"
	KindEquals      Kind = "equals"
	KindHashCode    Kind = "hash_code"
	KindKeyComparer Kind = "key_comparer"
	KindCompareTo   Kind = "compare_to"
	KindParse       Kind = "parse"
	KindTryParse    Kind = "try_parse"
	KindSwitch      Kind = "switch"
	KindMap         Kind = "map"
	KindToString    Kind = "to_string"
	KindDelegate    Kind = "delegate"
)

// KindOrder is the fixed order fragments are emitted in.
var KindOrder = []Kind{
	KindItems,
	KindKeyMember,
	KindConstructor,
	KindGet,
	KindTryGet,
	KindValidate,
	KindInvalidItem,
	KindCreate,
	KindTryCreate,
	KindFactoryHook,
	KindEquals,
	KindHashCode,
	KindKeyComparer,
	KindCompareTo,
	KindParse,
	KindTryParse,
	KindSwitch,
	KindMap,
	KindToString,
	KindDelegate,
}

func kindRank(k Kind) int {
	for i, x := range KindOrder {
		if x == k {
			return i
		}
	}
	return len(KindOrder)
}
