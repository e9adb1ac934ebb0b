package disasm

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"testing"
	"unsafe"

	"golang.org/x/arch/x86/x86asm"
	"golang.org/x/sys/unix"

	"github.com/wdamron/x86dec"
)

// setFuncCode points the function value at dstAddr to executable machine code.
// This function is entirely unsafe.
//
// dstAddr must be a pointer to a function value; executable must be marked
// with PROT_EXEC privileges through a MPROTECT system-call.
func setFuncCode(dstAddr interface{}, executable []byte) error {
	// See "Go 1.1 Function Calls":
	// https://docs.google.com/document/d/1bMwCey-gmqZVTpRax-ESeVuZGmjwbocYs1iHplK-cjo/pub
	type interfaceHeader struct {
		typ  uintptr
		addr **[]byte
	}
	v := reflect.ValueOf(dstAddr)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || !v.Elem().CanSet() || v.Elem().Kind() != reflect.Func {
		return fmt.Errorf("Destination for setFuncCode must be a pointer to a function-value")
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&dstAddr))
	*header.addr = &executable
	return nil
}

func TestDisasm(t *testing.T) {
	if runtime.GOARCH != "amd64" || runtime.GOOS == "windows" {
		t.Skip("requires amd64 and a unix mmap")
	}
	mem, err := unix.Mmap(-1, 0, os.Getpagesize(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		t.Fatalf("sys/unix.Mmap failed: %v", err)
	}

	defer unix.Munmap(mem)

	// Args arrive in RAX/RBX and the result leaves in RAX.
	copy(mem, []byte{
		0x48, 0x89, 0xd1, // mov rcx, rdx
		0x48, 0x01, 0xd8, // add rax, rbx
		0xc3, // ret
	})

	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		t.Fatalf("sys/unix.Mprotect failed: %v", err)
	}

	sum := (func(a, b int) int)(nil)
	if err := setFuncCode(&sum, mem); err != nil {
		t.Fatal(err)
	}

	if sum(1, 2) != 3 {
		t.Fatalf("sum(1, 2) should not equal %v", sum(1, 2))
	}

	var insts []x86dec.Inst
	takeWhile := func(inst x86dec.Inst) bool {
		insts = append(insts, inst)
		return true // RET + padding should be automatically detected
	}
	if err := Func(sum, takeWhile); err != nil {
		t.Fatal(err)
	}
	if len(insts) != 3 {
		t.Fatalf("expected %v instructions, found %v", 3, len(insts))
	}
	check := func(i int, mnemonic x86dec.Mnemonic, dst, src x86dec.Reg) {
		inst := insts[i]
		if inst.Mnemonic != mnemonic {
			t.Fatalf("instruction %d: expected %s, found %s", i, mnemonic, inst.Mnemonic)
		}
		if dst != 0 && (inst.Ops[0].Reg != dst || inst.Ops[1].Reg != src) {
			t.Fatalf("instruction %d: found operands %v", i, inst.Args())
		}
	}
	check(0, x86dec.MOV, x86dec.RCX, x86dec.RDX)
	check(1, x86dec.ADD, x86dec.RAX, x86dec.RBX)
	check(2, x86dec.RET, 0, 0)
}

//go:noinline
func liveSum(a, b int) int { return a + b }

func liveFuncCode(funcValue interface{}) []byte {
	type interfaceHeader struct {
		typ  uintptr
		addr **[]byte
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&funcValue))
	code := (*[4096]byte)(unsafe.Pointer(*header.addr))
	return code[:]
}

// Walks the compiler's own output for a live function, cross-checking every
// instruction length against the x86asm decoder.
func TestDisasmGoFunc(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("requires amd64 code")
	}

	var insts []x86dec.Inst
	takeWhile := func(inst x86dec.Inst) bool {
		insts = append(insts, inst)
		return inst.Mnemonic != x86dec.RET
	}
	if err := Func(liveSum, takeWhile); err != nil {
		t.Fatal(err)
	}
	if len(insts) == 0 || insts[len(insts)-1].Mnemonic != x86dec.RET {
		t.Fatalf("expected a RET-terminated sequence, found %v instructions", len(insts))
	}

	code := liveFuncCode(liveSum)
	n := 0
	for _, inst := range insts {
		ref, err := x86asm.Decode(code[n:n+17], 64)
		if err != nil {
			t.Fatal(err)
		}
		if ref.Len != int(inst.Len) {
			t.Fatalf("length mismatch at +%#x: %v != %v", n, inst.Len, ref.Len)
		}
		n += ref.Len
	}
}
