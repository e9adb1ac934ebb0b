package x86dec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStackOperands(t *testing.T) {
	inst := mustDecode(t, Mode64, "55")
	if inst.OpSize != 8 {
		t.Fatalf("push rbp: opsize %v", inst.OpSize)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead, Size: 8, Reg: RBP},
		{Kind: OpMem, Access: AccWrite, Size: 8, Mem: Memory{Base: RSP, Stack: true}},
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 8, Reg: RSP},
	})

	// 66 shrinks the pushed slot but not the stack pointer.
	inst = mustDecode(t, Mode64, "66 55")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead, Size: 2, Reg: BP},
		{Kind: OpMem, Access: AccWrite, Size: 2, Mem: Memory{Base: RSP, Stack: true}},
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 8, Reg: RSP},
	})

	// REX.B extends the register number embedded in the opcode byte.
	inst = mustDecode(t, Mode64, "41 50")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead, Size: 8, Reg: R8},
		{Kind: OpMem, Access: AccWrite, Size: 8, Mem: Memory{Base: RSP, Stack: true}},
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 8, Reg: RSP},
	})

	// In 32-bit mode the slot follows the operand size and SS applies.
	inst = mustDecode(t, Mode32, "55")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: EBP},
		{Kind: OpMem, Access: AccWrite, Size: 4, Mem: Memory{Seg: SS, Base: ESP, Stack: true}},
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 4, Reg: ESP},
	})

	// PUSH imm is encoded in 4 bytes but sign-extended to the full
	// operand size, so the operand reports the effective width.
	inst = mustDecode(t, Mode64, "68 78 56 34 12")
	if inst.Ops[0].Imm != 0x12345678 || inst.Ops[0].Size != 8 {
		t.Fatalf("push imm32: %+v", inst.Ops[0])
	}
	if inst.OpSize != 8 {
		t.Fatalf("push imm32: opsize %v", inst.OpSize)
	}
	if inst.ImmLen != 4 {
		t.Fatalf("push imm32: immlen %v", inst.ImmLen)
	}

	// With an operand-size override the immediate shrinks with the
	// operand.
	inst = mustDecode(t, Mode64, "66 68 34 12")
	if inst.Ops[0].Imm != 0x1234 || inst.Ops[0].Size != 2 || inst.ImmLen != 2 {
		t.Fatalf("push imm16: %+v immlen %v", inst.Ops[0], inst.ImmLen)
	}
}

func TestStringOperands(t *testing.T) {
	inst := mustDecode(t, Mode64, "f3 a4")
	if inst.Mnemonic != MOVS || inst.Prefixes.Rep != 0xF3 {
		t.Fatalf("rep movsb: %s rep=%#x", inst.Mnemonic, inst.Prefixes.Rep)
	}
	if inst.ValidPrefixes&PrefixREP == 0 {
		t.Fatal("rep movsb: PrefixREP not advertised")
	}
	checkOps(t, inst, []Op{
		{Kind: OpMem, Access: AccWrite, Size: 1, Mem: Memory{Base: RDI, String: true}},
		{Kind: OpMem, Access: AccRead, Size: 1, Mem: Memory{Base: RSI, String: true}},
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 8, Reg: RSI},
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 8, Reg: RDI},
	})
	if inst.Flags.Tested != FlagDF {
		t.Fatalf("rep movsb flags: %+v", inst.Flags)
	}

	// The destination segment of a string move is ES outside long mode.
	inst = mustDecode(t, Mode32, "a4")
	if inst.Ops[0].Mem.Seg != ES || inst.Ops[1].Mem.Seg != DS {
		t.Fatalf("movsb segs: %+v %+v", inst.Ops[0].Mem, inst.Ops[1].Mem)
	}

	inst = mustDecode(t, Mode64, "f2 ae")
	if inst.Mnemonic != SCAS || inst.Prefixes.Rep != 0xF2 {
		t.Fatalf("repne scasb: %s", inst.Mnemonic)
	}
	if inst.ValidPrefixes&PrefixREPcc == 0 {
		t.Fatal("repne scasb: PrefixREPcc not advertised")
	}
	if inst.Flags.Modified != flagsStatus || inst.Flags.Tested != FlagDF {
		t.Fatalf("scasb flags: %+v", inst.Flags)
	}
}

func TestFlagsAnnotation(t *testing.T) {
	for _, tc := range []struct {
		hex  string
		want FlagsAccess
	}{
		{"01 c8", FlagsAccess{Modified: flagsStatus}},
		{"31 c0", FlagsAccess{
			Modified:  FlagSF | FlagZF | FlagPF,
			Cleared:   FlagOF | FlagCF,
			Undefined: FlagAF,
		}},
		{"11 c8", FlagsAccess{Tested: FlagCF, Modified: flagsStatus}}, // ADC
		{"ff c0", FlagsAccess{Modified: flagsStatus &^ FlagCF}},       // INC
		{"f5", FlagsAccess{Modified: FlagCF}},                         // CMC
		{"f8", FlagsAccess{Cleared: FlagCF}},                          // CLC
		{"f9", FlagsAccess{Set: FlagCF}},                              // STC
		{"f3 0f b8 c8", FlagsAccess{
			Modified: FlagZF,
			Cleared:  FlagOF | FlagSF | FlagAF | FlagCF | FlagPF,
		}},
		{"0f a3 c8", FlagsAccess{
			Modified:  FlagCF,
			Undefined: FlagOF | FlagSF | FlagAF | FlagPF,
		}},
		{"0f 2e c1", FlagsAccess{
			Modified: FlagZF | FlagPF | FlagCF,
			Cleared:  FlagOF | FlagSF | FlagAF,
		}},
	} {
		inst := mustDecode(t, Mode64, tc.hex)
		if diff := cmp.Diff(tc.want, inst.Flags); diff != "" {
			t.Fatalf("flags for %s (-want +got):\n%s", tc.hex, diff)
		}
	}
}

func TestVexOperands(t *testing.T) {
	inst := mustDecode(t, Mode64, "c5 f0 58 c2")
	if inst.Mnemonic != VADDPS || inst.VecLen != 16 {
		t.Fatalf("vaddps: %s veclen=%v", inst.Mnemonic, inst.VecLen)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 16, Reg: X0},
		{Kind: OpReg, Access: AccRead, Size: 16, Reg: X1},
		{Kind: OpReg, Access: AccRead, Size: 16, Reg: X2},
	})

	// VEX.L selects the 256-bit form.
	inst = mustDecode(t, Mode64, "c5 f5 fe c2")
	if inst.Mnemonic != VPADDD || inst.VecLen != 32 {
		t.Fatalf("vpaddd: %s veclen=%v", inst.Mnemonic, inst.VecLen)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 32, Reg: Y0},
		{Kind: OpReg, Access: AccRead, Size: 32, Reg: Y1},
		{Kind: OpReg, Access: AccRead, Size: 32, Reg: Y2},
	})

	// VEX.L splits VZEROUPPER from VZEROALL. VZEROUPPER is not length
	// dispatched, so it reports no vector length.
	if inst := mustDecode(t, Mode64, "c5 f8 77"); inst.Mnemonic != VZEROUPPER || inst.VecLen != 0 {
		t.Fatalf("c5 f8 77: %s veclen=%v", inst.Mnemonic, inst.VecLen)
	}
	if inst := mustDecode(t, Mode64, "c5 fc 77"); inst.Mnemonic != VZEROALL || inst.VecLen != 32 {
		t.Fatalf("c5 fc 77: %s veclen=%v", inst.Mnemonic, inst.VecLen)
	}
}

func TestBMIOperands(t *testing.T) {
	// SHLX reads its shift count from vvvv.
	inst := mustDecode(t, Mode64, "c4 e2 71 f7 c2")
	if inst.Mnemonic != SHLX {
		t.Fatalf("shlx: %s", inst.Mnemonic)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 4, Reg: EAX},
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: EDX},
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: ECX},
	})

	// ANDN puts vvvv in the middle. The BMI group is VEX-encoded but
	// scalar, so no vector length is reported.
	inst = mustDecode(t, Mode64, "c4 e2 70 f2 c2")
	if inst.Mnemonic != ANDN || inst.VecLen != 0 {
		t.Fatalf("andn: %s veclen=%v", inst.Mnemonic, inst.VecLen)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 4, Reg: EAX},
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: ECX},
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: EDX},
	})
	if inst.Flags.Cleared != FlagOF {
		t.Fatalf("andn flags: %+v", inst.Flags)
	}

	// BLSR writes through vvvv and takes rm as its source.
	inst = mustDecode(t, Mode64, "c4 e2 70 f3 ca")
	if inst.Mnemonic != BLSR {
		t.Fatalf("blsr: %s", inst.Mnemonic)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 4, Reg: ECX},
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: EDX},
	})

	// VEX.W widens the whole operation.
	inst = mustDecode(t, Mode64, "c4 e2 f1 f7 c2")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 8, Reg: RAX},
		{Kind: OpReg, Access: AccRead, Size: 8, Reg: RDX},
		{Kind: OpReg, Access: AccRead, Size: 8, Reg: RCX},
	})
}

func TestVSIB(t *testing.T) {
	inst := mustDecode(t, Mode64, "c4 e2 6d 92 04 0f")
	if inst.Mnemonic != VGATHERDPS {
		t.Fatalf("vgatherdps: %s", inst.Mnemonic)
	}
	m := memArg(t, inst, 1)
	if !m.VSIB || m.Base != RDI || m.Index != Y1 || m.Scale != 1 {
		t.Fatalf("vsib: %+v", m)
	}
	if inst.Ops[0].Reg != Y0 || inst.Ops[2].Reg != Y2 {
		t.Fatalf("gather regs: %+v", inst.Args())
	}
	// Index 4 is never suppressed in a VSIB form.
	inst = mustDecode(t, Mode64, "c4 e2 6d 92 04 27")
	if m := memArg(t, inst, 1); m.Index != Y4 {
		t.Fatalf("vsib index 4: %+v", m)
	}
}

func TestMaskRegisters(t *testing.T) {
	inst := mustDecode(t, Mode64, "c5 f8 90 ca")
	if inst.Mnemonic != KMOVW {
		t.Fatalf("kmovw: %s", inst.Mnemonic)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 2, Reg: K1},
		{Kind: OpReg, Access: AccRead, Size: 2, Reg: K2},
	})

	inst = mustDecode(t, Mode64, "c5 f8 92 ca")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 2, Reg: K1},
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: EDX},
	})

	inst = mustDecode(t, Mode64, "c5 f8 93 d1")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 4, Reg: EDX},
		{Kind: OpReg, Access: AccRead, Size: 2, Reg: K1},
	})
}

func TestEvexOperands(t *testing.T) {
	inst := mustDecode(t, Mode64, "62 f1 74 08 58 c2")
	if inst.Mnemonic != VADDPS || inst.VecLen != 16 || inst.Len != 6 {
		t.Fatalf("evex vaddps: %s veclen=%v len=%v", inst.Mnemonic, inst.VecLen, inst.Len)
	}
	if inst.Ops[0].Reg != X0 || inst.Ops[1].Reg != X1 || inst.Ops[2].Reg != X2 {
		t.Fatalf("evex vaddps regs: %+v", inst.Args())
	}

	// Opmask and zeroing decorate the destination.
	inst = mustDecode(t, Mode64, "62 f1 74 89 58 c2")
	op := inst.Ops[0]
	if op.Mask != K1 || !op.Zeroing {
		t.Fatalf("mask+zeroing: %+v", op)
	}

	// Zeroing without a mask is invalid.
	if _, err := Decode(fromHex(t, "62 f1 74 88 58 c2"), Mode64); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("zeroing without mask: %v", err)
	}

	// The b bit on a memory form requests a broadcast.
	inst = mustDecode(t, Mode64, "62 f1 74 18 58 02")
	if op := inst.Ops[2]; op.Kind != OpMem || !op.Broadcast {
		t.Fatalf("broadcast: %+v", op)
	}

	// The b bit on a register form requests static rounding.
	inst = mustDecode(t, Mode64, "62 f1 74 18 58 c2")
	if op := inst.Ops[0]; !op.ER || op.Rounding != 0 {
		t.Fatalf("static rounding: %+v", op)
	}

	// Rounding is rejected where the definition does not allow it.
	if _, err := Decode(fromHex(t, "62 f1 75 18 fe c2"), Mode64); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("vpaddd with rounding: %v", err)
	}

	// Compressed displacements are reported as encoded.
	inst = mustDecode(t, Mode64, "62 f1 74 08 58 42 01")
	if m := memArg(t, inst, 2); m.Disp != 1 || m.DispWidth != 1 {
		t.Fatalf("evex disp8: %+v", m)
	}
}
