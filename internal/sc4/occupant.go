// Package sc4 covers the slice of the host game that the plugin
// consumes: identifying the running executable build and reading the
// exemplar name property off a demolished occupant.
package sc4

// ExemplarNamePropertyID identifies the string property carrying an
// occupant's exemplar display name.
const ExemplarNamePropertyID uint32 = 0x00000020

// VariantType tags the value kind held by a Variant.
type VariantType uint16

// Variant value kinds. Only TypeCharArray is consumed here; the rest
// exist so an unexpected kind decodes to something nameable.
const (
	TypeEmpty     VariantType = 0x00
	TypeBool      VariantType = 0x01
	TypeUint8     VariantType = 0x02
	TypeSint32    VariantType = 0x07
	TypeUint32    VariantType = 0x08
	TypeFloat32   VariantType = 0x09
	TypeCharArray VariantType = 0x0c
)

// Variant is a typed property value.
type Variant interface {
	Type() VariantType
	// CharArray returns the string payload when Type is TypeCharArray.
	CharArray() (string, bool)
}

// Property is one keyed metadata entry on an occupant.
type Property interface {
	Value() Variant
}

// PropertyHolder retrieves typed properties by their 32-bit identifier.
type PropertyHolder interface {
	Property(id uint32) (Property, bool)
}

// Occupant is any placed simulated entity capable of being demolished.
type Occupant interface {
	AsPropertyHolder() PropertyHolder
}

// ExemplarName resolves an occupant's display name from its property
// collection. A nil occupant, a missing property or a value of an
// unexpected kind all yield an empty name; the lookup never fails.
func ExemplarName(oc Occupant) string {
	if oc == nil {
		return ""
	}
	holder := oc.AsPropertyHolder()
	if holder == nil {
		return ""
	}
	prop, ok := holder.Property(ExemplarNamePropertyID)
	if !ok || prop == nil {
		return ""
	}
	value := prop.Value()
	if value == nil {
		return ""
	}
	name, ok := value.CharArray()
	if !ok {
		return ""
	}
	return name
}
