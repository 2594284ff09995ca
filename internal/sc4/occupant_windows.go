//go:build windows

package sc4

import (
	"syscall"
	"unsafe"
)

// The game's GZCOM interfaces use the stdcall convention with the object
// pointer as the first stack argument, so their vtable slots can be
// reached with plain syscalls.

// Vtable slot indexes of the methods consumed here, as shipped in the
// game's interfaces.
const (
	slotOccupantAsPropertyHolder = 8
	slotHolderGetProperty        = 11
	slotPropertyGetValue         = 4
	slotVariantGetType           = 3
	slotVariantRefRZChar         = 26
)

// vcall invokes the method at the given vtable slot of a host object.
func vcall(obj uintptr, slot int, args ...uintptr) uintptr {
	vtbl := *(*uintptr)(unsafe.Pointer(obj))
	fn := *(*uintptr)(unsafe.Pointer(vtbl + uintptr(slot)*unsafe.Sizeof(obj)))
	callArgs := append([]uintptr{obj}, args...)
	r, _, _ := syscall.SyscallN(fn, callArgs...)
	return r
}

// RawOccupant adapts a host occupant pointer to the Occupant interface.
// The zero value stands for a null occupant.
type RawOccupant uintptr

func (oc RawOccupant) AsPropertyHolder() PropertyHolder {
	if oc == 0 {
		return nil
	}
	holder := vcall(uintptr(oc), slotOccupantAsPropertyHolder)
	if holder == 0 {
		return nil
	}
	return rawPropertyHolder(holder)
}

type rawPropertyHolder uintptr

func (ph rawPropertyHolder) Property(id uint32) (Property, bool) {
	p := vcall(uintptr(ph), slotHolderGetProperty, uintptr(id))
	if p == 0 {
		return nil, false
	}
	return rawProperty(p), true
}

type rawProperty uintptr

func (p rawProperty) Value() Variant {
	v := vcall(uintptr(p), slotPropertyGetValue)
	if v == 0 {
		return nil
	}
	return rawVariant(v)
}

type rawVariant uintptr

func (v rawVariant) Type() VariantType {
	return VariantType(vcall(uintptr(v), slotVariantGetType))
}

func (v rawVariant) CharArray() (string, bool) {
	if v.Type() != TypeCharArray {
		return "", false
	}
	p := vcall(uintptr(v), slotVariantRefRZChar)
	if p == 0 {
		return "", false
	}
	return cstring(p), true
}

// cstring copies a NUL-terminated string out of host memory.
func cstring(p uintptr) string {
	var buf []byte
	for {
		c := *(*byte)(unsafe.Pointer(p))
		if c == 0 {
			break
		}
		buf = append(buf, c)
		p++
	}
	return string(buf)
}
