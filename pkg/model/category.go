package model

import "github.com/leapstack-labs/smartgen/pkg/syntax"

// Category is the domain-modeling category of an annotated type.
type Category int

// Categories.
const (
	CategoryUnknown Category = iota
	CategoryEnum
	CategoryValidatableEnum
	CategoryValueObject
	CategoryComplexValueObject
	CategoryUnion
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryEnum:
		return "Enum"
	case CategoryValidatableEnum:
		return "ValidatableEnum"
	case CategoryValueObject:
		return "ValueObject"
	case CategoryComplexValueObject:
		return "ComplexValueObject"
	case CategoryUnion:
		return "Union"
	default:
		return "Unknown"
	}
}

// IsEnum reports whether the category is one of the smart enum categories.
func (c Category) IsEnum() bool {
	return c == CategoryEnum || c == CategoryValidatableEnum
}

// IsValueObject reports whether the category is a simple or complex value object.
func (c Category) IsValueObject() bool {
	return c == CategoryValueObject || c == CategoryComplexValueObject
}

// HasKey reports whether the category carries a key member.
func (c Category) HasKey() bool {
	return c.IsEnum() || c == CategoryValueObject
}

// Shape is the declared shape of the type.
type Shape int

// Shapes.
const (
	ShapeClass Shape = iota
	ShapeStruct
	ShapeRecord
	ShapeRecordStruct
	ShapeInterface
)

// ShapeOf maps a declaration kind to its shape.
func ShapeOf(k syntax.TypeKind) Shape {
	switch k {
	case syntax.KindStruct:
		return ShapeStruct
	case syntax.KindRecord:
		return ShapeRecord
	case syntax.KindRecordStruct:
		return ShapeRecordStruct
	case syntax.KindInterface:
		return ShapeInterface
	default:
		return ShapeClass
	}
}

// String returns the declaration keyword of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeStruct:
		return "struct"
	case ShapeRecord:
		return "record"
	case ShapeRecordStruct:
		return "record struct"
	case ShapeInterface:
		return "interface"
	default:
		return "class"
	}
}

// IsStruct reports whether the shape is a value-type shape.
func (s Shape) IsStruct() bool {
	return s == ShapeStruct || s == ShapeRecordStruct
}

// IsRecord reports whether the shape is a record shape.
func (s Shape) IsRecord() bool {
	return s == ShapeRecord || s == ShapeRecordStruct
}

// Annotation and interface names that mark the categories.
const (
	MarkerSmartEnum          = "SmartEnum"
	MarkerValueObject        = "ValueObject"
	MarkerComplexValueObject = "ComplexValueObject"
	MarkerUnion              = "Union"

	ContractEnum            = "IEnum"
	ContractValidatableEnum = "IValidatableEnum"
)

// Annotation argument names.
const (
	ArgIsValidatable           = "IsValidatable"
	ArgIsExtensible            = "IsExtensible"
	ArgKeyMemberName           = "KeyMemberName"
	ArgKeyMember               = "KeyMember"
	ArgSkipKeyMember           = "SkipKeyMember"
	ArgAllowDefaultStructs     = "AllowDefaultStructs"
	ArgDefaultStringComparison = "DefaultStringComparison"
	ArgValueType               = "ValueType"
	ArgHasCorrespondingCtor    = "HasCorrespondingConstructor"
)

// Annotations that configure comparers, factories and delegates.
const (
	AnnotationKeyEqualityComparer    = "KeyEqualityComparer"
	AnnotationKeyComparer            = "KeyComparer"
	AnnotationMemberEqualityComparer = "MemberEqualityComparer"
	AnnotationObjectFactory          = "ObjectFactory"
	AnnotationUseDelegate            = "UseDelegateFromConstructor"
)

// Names the generator reserves on the annotated type.
const (
	DefaultKeyMemberName = "Key"
	ItemsAccessorName    = "Items"
	InvalidItemFactory   = "CreateInvalidItem"
	KeyEqualityAccessor  = "KeyEqualityComparer"
	KeyOrderingAccessor  = "KeyComparer"
	OrdinalIgnoreCase    = "ComparerAccessors.StringOrdinalIgnoreCase"
	DefaultStringPolicy  = "StringComparison.OrdinalIgnoreCase"
	FactoryArgumentsHook = "ValidateFactoryArguments"
	IsValidPropertyName  = "IsValid"
)

// CategoryMarkers lists the category annotations in precedence order.
var CategoryMarkers = []string{
	MarkerSmartEnum,
	MarkerValueObject,
	MarkerComplexValueObject,
	MarkerUnion,
}

// IsContract reports whether name is one of the enum contract interfaces.
func IsContract(name string) bool {
	return name == ContractEnum || name == ContractValidatableEnum
}
