package x86dec

// Rflags is a bitset of architectural flags. The RFLAGS bits use their
// architectural positions; the x87 condition-code bits are folded into the
// otherwise-reserved high byte so one bitset covers both register files.
type Rflags uint32

const (
	FlagCF Rflags = 1 << 0
	FlagPF Rflags = 1 << 2
	FlagAF Rflags = 1 << 4
	FlagZF Rflags = 1 << 6
	FlagSF Rflags = 1 << 7
	FlagTF Rflags = 1 << 8
	FlagIF Rflags = 1 << 9
	FlagDF Rflags = 1 << 10
	FlagOF Rflags = 1 << 11

	// x87 status-word condition codes, repositioned.
	FlagC0 Rflags = 1 << 28
	FlagC1 Rflags = 1 << 29
	FlagC2 Rflags = 1 << 30
	FlagC3 Rflags = 1 << 31
)

const flagsStatus = FlagCF | FlagPF | FlagAF | FlagZF | FlagSF | FlagOF

// FlagsAccess classifies, per flag, how an instruction interacts with the
// flags register. A flag appears in at most one set; flags in no set are
// untouched. The classification is static table data: no flag values are
// computed here.
type FlagsAccess struct {
	Tested    Rflags // read to determine behavior
	Modified  Rflags // set or cleared according to the result
	Set       Rflags // unconditionally set to 1
	Cleared   Rflags // unconditionally cleared to 0
	Undefined Rflags // left in an undefined state
}

// Touched returns every flag the instruction interacts with in any way.
func (f FlagsAccess) Touched() Rflags {
	return f.Tested | f.Modified | f.Set | f.Cleared | f.Undefined
}

// annotateFlags projects the definition's static flags classification onto
// the record. Condition-coded instructions additionally read the flags named
// by their condition, which the generator leaves to the decoder since the
// tested set depends on the opcode's low nibble.
func annotateFlags(x *Inst, def *instDef, opcode byte) {
	fa := rflagsSets[def.rflags]
	if def.rflags == rfCond {
		fa.Tested |= ccFromOpcode(opcode).Tested()
	}
	x.Flags = fa
}

// Flags-access set indices, referenced by instruction definitions.
const (
	rfNone  = iota
	rfArith // OSZAPC modified by result
	rfLogic // OC cleared, SZP by result, AF undefined
	rfIncDec
	rfShift
	rfRotate
	rfMulDiv
	rfTestedCarry // reads CF (ADC, SBB also write: combined with arith below)
	rfAdcSbb
	rfBt
	rfBsf
	rfTzcnt
	rfCond // tested set filled from the condition code at decode time
	rfCmc
	rfClc
	rfStc
	rfCld
	rfStd
	rfCli
	rfSti
	rfSahf
	rfLahf
	rfCmpxchg
	rfPopf
	rfPushf
	rfComis
	rfRdrand
	rfString // reads DF
	rfCmpString
	rfBmi
	rfPtest
	rfPopcnt
)

var rflagsSets = [...]FlagsAccess{
	rfNone:  {},
	rfArith: {Modified: flagsStatus},
	rfLogic: {
		Modified:  FlagSF | FlagZF | FlagPF,
		Cleared:   FlagOF | FlagCF,
		Undefined: FlagAF,
	},
	rfIncDec: {Modified: flagsStatus &^ FlagCF},
	rfShift: {
		Modified:  FlagSF | FlagZF | FlagPF | FlagCF,
		Undefined: FlagOF | FlagAF,
	},
	rfRotate:      {Modified: FlagCF, Undefined: FlagOF},
	rfMulDiv:      {Modified: FlagOF | FlagCF, Undefined: FlagSF | FlagZF | FlagAF | FlagPF},
	rfTestedCarry: {Tested: FlagCF},
	rfAdcSbb:      {Tested: FlagCF, Modified: flagsStatus},
	rfBt:          {Modified: FlagCF, Undefined: FlagOF | FlagSF | FlagAF | FlagPF},
	rfBsf:         {Modified: FlagZF, Undefined: FlagOF | FlagSF | FlagAF | FlagPF | FlagCF},
	rfTzcnt:       {Modified: FlagCF | FlagZF, Undefined: FlagOF | FlagSF | FlagAF | FlagPF},
	rfCond:        {}, // tested set filled per condition
	rfCmc:         {Modified: FlagCF},
	rfClc:         {Cleared: FlagCF},
	rfStc:         {Set: FlagCF},
	rfCld:         {Cleared: FlagDF},
	rfStd:         {Set: FlagDF},
	rfCli:         {Cleared: FlagIF},
	rfSti:         {Set: FlagIF},
	rfSahf:        {Modified: flagsStatus &^ FlagOF},
	rfLahf:        {Tested: flagsStatus &^ FlagOF},
	rfCmpxchg:     {Modified: flagsStatus},
	rfPopf:        {Modified: flagsStatus | FlagTF | FlagIF | FlagDF},
	rfPushf:       {Tested: flagsStatus | FlagTF | FlagIF | FlagDF},
	rfComis: {
		Modified: FlagZF | FlagPF | FlagCF,
		Cleared:  FlagOF | FlagSF | FlagAF,
	},
	rfRdrand: {Modified: FlagCF, Cleared: FlagOF | FlagSF | FlagZF | FlagAF | FlagPF},
	rfString: {Tested: FlagDF},
	rfCmpString: {
		Tested:   FlagDF,
		Modified: flagsStatus,
	},
	rfBmi: {
		Modified:  FlagSF | FlagZF | FlagCF,
		Cleared:   FlagOF,
		Undefined: FlagAF | FlagPF,
	},
	rfPtest: {
		Modified: FlagZF | FlagCF,
		Cleared:  FlagOF | FlagSF | FlagAF | FlagPF,
	},
	rfPopcnt: {
		Modified: FlagZF,
		Cleared:  FlagOF | FlagSF | FlagAF | FlagCF | FlagPF,
	},
}
