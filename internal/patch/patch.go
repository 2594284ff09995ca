// Package patch rewrites a single call instruction inside the running
// process so that it invokes a replacement function.
//
// This is deliberately not a hooking framework. The caller must know, a
// priori, that the target address holds a 5-byte near relative call whose
// replacement honors the original callee's calling convention. Everything
// here exists to apply that one write safely and observably.
package patch

import (
	"encoding/binary"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/arch/x86/x86asm"
)

const (
	// callLen is the size of a near relative CALL: a 1-byte opcode
	// followed by a 4-byte signed displacement.
	callLen = 5

	opcodeCALLrel = 0xe8 // CALL rel32
)

// ErrNotACallSite means the bytes at the target address do not hold a
// 5-byte relative call instruction.
var ErrNotACallSite = errors.New("target is not a 5-byte relative call site")

// protect is a seam for tests to simulate an OS protection failure.
var protect = mprotect

// InstallCallHook rewrites the call instruction at target so that it
// calls replacement instead of its original callee. The calling
// convention of the original callee is preserved by the encoding; only
// the displacement changes.
//
// The page protection is left read/write/execute afterwards. The patch
// is a single write per process lifetime and restoring the protection
// would only add a failure path.
func InstallCallHook(target, replacement uintptr) error {
	code := codeSlice(target, callLen)

	if err := verifyCallSite(code); err != nil {
		return errors.Wrapf(err, "call site 0x%x", target)
	}

	if err := protect(code, mprotectRWX); err != nil {
		return errors.Wrapf(err, "changing protection at 0x%x", target)
	}

	encodeCall(code, target, replacement)
	return nil
}

// codeSlice views length bytes of process memory at addr as a byte
// slice.
func codeSlice(addr uintptr, length int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
}

// verifyCallSite decodes code in 32-bit mode and checks that it begins
// with a near relative call. The hook table promises this; an address
// that fails the check means the table entry is wrong for the loaded
// executable and nothing may be written.
func verifyCallSite(code []byte) error {
	inst, err := x86asm.Decode(code, 32)
	if err != nil {
		return ErrNotACallSite
	}
	if inst.Op != x86asm.CALL || inst.Len != callLen || code[0] != opcodeCALLrel {
		return ErrNotACallSite
	}
	return nil
}

// encodeCall writes a near relative CALL to dest over the first callLen
// bytes of code, where site is the address the code was taken from. The
// displacement is relative to the end of the instruction.
func encodeCall(code []byte, site, dest uintptr) {
	code[0] = opcodeCALLrel
	diff32 := int32(dest - site - callLen)
	binary.LittleEndian.PutUint32(code[1:], uint32(diff32))
}

// callTarget decodes the destination of the relative call held in code,
// where site is the address the code was taken from. It is the inverse
// of encodeCall.
func callTarget(code []byte, site uintptr) (uintptr, error) {
	if code[0] != opcodeCALLrel {
		return 0, ErrNotACallSite
	}
	disp := int32(binary.LittleEndian.Uint32(code[1:]))
	return site + callLen + uintptr(int64(disp)), nil
}
