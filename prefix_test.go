package x86dec

import (
	"bytes"
	"errors"
	"testing"
)

func TestPrefixPadding(t *testing.T) {
	// 14 operand-size prefixes plus NOP is exactly 15 bytes.
	code := append(bytes.Repeat([]byte{0x66}, 14), 0x90)
	inst, err := Decode(code, Mode64)
	if err != nil {
		t.Fatalf("15-byte NOP: %v", err)
	}
	if inst.Len != 15 || inst.Mnemonic != NOP || inst.OpSize != 2 {
		t.Fatalf("15-byte NOP: len=%v %s opsize=%v", inst.Len, inst.Mnemonic, inst.OpSize)
	}
	if inst.PrefixLen != 14 || inst.OpcodeOff != 14 {
		t.Fatalf("15-byte NOP extents: %+v", inst)
	}

	// One more prefix pushes the opcode past the 15-byte limit.
	code = append(bytes.Repeat([]byte{0x66}, 15), 0x90)
	_, err = Decode(code, Mode64)
	if !errors.Is(err, ErrLengthExceeded) {
		t.Fatalf("16-byte NOP: err = %v, want ErrLengthExceeded", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Off != 15 {
		t.Fatalf("16-byte NOP: offset %v", de)
	}
}

// A REX byte takes effect only when it immediately precedes the opcode; any
// later legacy prefix displaces it, though byte-register aliasing still sees
// that a REX byte was consumed.
func TestRexDisplacement(t *testing.T) {
	inst := mustDecode(t, Mode64, "48 66 89 c8")
	if inst.OpSize != 2 {
		t.Fatalf("displaced REX.W: opsize %v", inst.OpSize)
	}
	if inst.Prefixes.Rex != 0 || !inst.Prefixes.RexPresent {
		t.Fatalf("displaced REX: %+v", inst.Prefixes)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 2, Reg: AX},
		{Kind: OpReg, Access: AccRead, Size: 2, Reg: CX},
	})

	// REX.W after 66 wins.
	inst = mustDecode(t, Mode64, "66 48 89 c8")
	if inst.OpSize != 8 {
		t.Fatalf("66 then REX.W: opsize %v", inst.OpSize)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 8, Reg: RAX},
		{Kind: OpReg, Access: AccRead, Size: 8, Reg: RCX},
	})
}

// Among F2/F3 the last one before the opcode selects the table column; the
// plain two-byte row is the fallback for legacy encodings only.
func TestRepSelection(t *testing.T) {
	inst := mustDecode(t, Mode64, "f2 f3 0f bc c8")
	if inst.Mnemonic != TZCNT {
		t.Fatalf("f2 f3 0f bc: %s", inst.Mnemonic)
	}
	inst = mustDecode(t, Mode64, "f3 f2 0f bc c8")
	if inst.Mnemonic != BSF {
		t.Fatalf("f3 f2 0f bc: %s", inst.Mnemonic)
	}
	// F2 has no column at 0F BC and falls back to the plain row.
	inst = mustDecode(t, Mode64, "f2 0f bc c8")
	if inst.Mnemonic != BSF {
		t.Fatalf("f2 0f bc: %s", inst.Mnemonic)
	}
}

func TestSegmentOverrides(t *testing.T) {
	inst := mustDecode(t, Mode64, "64 8b 00")
	if inst.Ops[1].Mem.Seg != FS || inst.Prefixes.SegByte != 0x64 {
		t.Fatalf("fs override: %+v", inst.Ops[1].Mem)
	}
	// CS/DS/ES/SS overrides are inert in 64-bit mode but still scanned.
	inst = mustDecode(t, Mode64, "3e 8b 00")
	if inst.Ops[1].Mem.Seg != 0 || inst.Prefixes.SegByte != 0x3E {
		t.Fatalf("ds override in long mode: %+v", inst.Prefixes)
	}
	inst = mustDecode(t, Mode32, "26 8b 00")
	if inst.Ops[1].Mem.Seg != ES {
		t.Fatalf("es override: %v", inst.Ops[1].Mem.Seg)
	}
	// Last override wins.
	inst = mustDecode(t, Mode32, "2e 3e 8b 00")
	if inst.Ops[1].Mem.Seg != DS || inst.Prefixes.SegByte != 0x3E {
		t.Fatalf("stacked overrides: %+v", inst.Prefixes)
	}
	// Branch-hint encoding of CS/DS before Jcc.
	inst = mustDecode(t, Mode64, "2e 74 05")
	if inst.Mnemonic != JCC || inst.Prefixes.SegByte != 0x2E {
		t.Fatalf("branch hint: %s %+v", inst.Mnemonic, inst.Prefixes)
	}
}

func TestAddrSizeOverride(t *testing.T) {
	inst := mustDecode(t, Mode64, "67 8b 40 12")
	if inst.AddrSize != 4 {
		t.Fatalf("67 in long mode: addrsize %v", inst.AddrSize)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 4, Reg: EAX},
		{Kind: OpMem, Access: AccRead, Size: 4, Mem: Memory{Base: EAX, Disp: 0x12, DispWidth: 1}},
	})
	// In 32-bit mode the override selects 16-bit addressing forms.
	inst = mustDecode(t, Mode32, "67 8b 40 12")
	if inst.AddrSize != 2 {
		t.Fatalf("67 in 32-bit mode: addrsize %v", inst.AddrSize)
	}
	if m := inst.Ops[1].Mem; m.Base != BX || m.Index != SI || m.Disp != 0x12 {
		t.Fatalf("16-bit form: %+v", m)
	}
}

// VEX/XOP/EVEX escapes reject any prior REX, LOCK, F2/F3, or 66 prefix.
func TestEscapePrefixRejection(t *testing.T) {
	for _, s := range []string{
		"66 c5 f8 77",
		"f3 c5 f8 77",
		"f2 c5 f0 58 c2",
		"f0 c5 f0 58 c2",
		"48 c5 f0 58 c2",
		"66 c4 e2 70 f2 c2",
		"48 62 f1 74 08 58 c2",
		"f2 62 f1 74 08 58 c2",
	} {
		if _, err := Decode(fromHex(t, s), Mode64); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("decode %s: err = %v, want ErrInvalidEncoding", s, err)
		}
	}
	// A segment override before an escape is fine.
	inst := mustDecode(t, Mode64, "64 c5 f0 58 02")
	if inst.Mnemonic != VADDPS || inst.Ops[2].Mem.Seg != FS {
		t.Fatalf("seg before vex: %s %+v", inst.Mnemonic, inst.Ops[2].Mem)
	}
}

// 8F opens an XOP escape only when the would-be map field selects maps 8-10;
// otherwise it is the POP Ev group.
func TestXopGating(t *testing.T) {
	inst := mustDecode(t, Mode64, "8f c0")
	if inst.Mnemonic != POP {
		t.Fatalf("8f c0: %s", inst.Mnemonic)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 8, Reg: RAX},
		{Kind: OpMem, Access: AccRead, Size: 8, Mem: Memory{Base: RSP, Stack: true}},
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 8, Reg: RSP},
	})

	inst = mustDecode(t, Mode64, "8f e9 78 01 cb")
	if inst.Mnemonic != BLCFILL {
		t.Fatalf("xop blcfill: %s", inst.Mnemonic)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 4, Reg: EAX},
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: EBX},
	})
}

// In legacy 32-bit mode C4/C5 escape only when the next byte's top two bits
// are set; otherwise the bytes belong to the legacy opcode space.
func TestVexGating32(t *testing.T) {
	inst := mustDecode(t, Mode32, "c5 f8 77")
	if inst.Mnemonic != VZEROUPPER {
		t.Fatalf("c5 f8 77 in 32-bit mode: %s", inst.Mnemonic)
	}
	// C5 with a modrm-looking second byte is LDS, which is not decoded.
	if _, err := Decode(fromHex(t, "c5 45 08"), Mode32); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("c5 45 in 32-bit mode: %v", err)
	}
}
