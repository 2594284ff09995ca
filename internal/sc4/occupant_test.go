package sc4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeVariant struct {
	typ VariantType
	str string
}

func (v fakeVariant) Type() VariantType { return v.typ }

func (v fakeVariant) CharArray() (string, bool) {
	if v.typ != TypeCharArray {
		return "", false
	}
	return v.str, true
}

type fakeProperty struct {
	value Variant
}

func (p fakeProperty) Value() Variant { return p.value }

type fakeHolder struct {
	props map[uint32]Property
}

func (h fakeHolder) Property(id uint32) (Property, bool) {
	p, ok := h.props[id]
	return p, ok
}

type fakeOccupant struct {
	holder PropertyHolder
}

func (o fakeOccupant) AsPropertyHolder() PropertyHolder { return o.holder }

func namedOccupant(name string) Occupant {
	return fakeOccupant{holder: fakeHolder{props: map[uint32]Property{
		ExemplarNamePropertyID: fakeProperty{value: fakeVariant{typ: TypeCharArray, str: name}},
	}}}
}

func TestExemplarName(t *testing.T) {
	assert.Equal(t, "R$$8_2x3_Apartments", ExemplarName(namedOccupant("R$$8_2x3_Apartments")))
}

func TestExemplarNameTolerance(t *testing.T) {
	cases := map[string]Occupant{
		"nil occupant":       nil,
		"no property holder": fakeOccupant{},
		"no properties":      fakeOccupant{holder: fakeHolder{}},
		"missing name property": fakeOccupant{holder: fakeHolder{props: map[uint32]Property{
			0x27812870: fakeProperty{value: fakeVariant{typ: TypeUint32}},
		}}},
		"nil property": fakeOccupant{holder: fakeHolder{props: map[uint32]Property{
			ExemplarNamePropertyID: nil,
		}}},
		"nil property value": fakeOccupant{holder: fakeHolder{props: map[uint32]Property{
			ExemplarNamePropertyID: fakeProperty{},
		}}},
		"wrong value kind": fakeOccupant{holder: fakeHolder{props: map[uint32]Property{
			ExemplarNamePropertyID: fakeProperty{value: fakeVariant{typ: TypeFloat32}},
		}}},
	}

	for name, oc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, ExemplarName(oc))
		})
	}
}
