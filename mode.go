package x86dec

// Mode is the declared CPU bitness decoding takes place in.
type Mode uint8

const (
	Mode16 Mode = 2 // real/virtual-8086/16-bit protected
	Mode32 Mode = 4 // 32-bit protected/compatibility
	Mode64 Mode = 8 // long mode
)

func (m Mode) String() string {
	switch m {
	case Mode16:
		return "16-bit"
	case Mode32:
		return "32-bit"
	case Mode64:
		return "64-bit"
	}
	return "unknown mode"
}

// Modes is a validity bitset of processor operating modes copied from the
// instruction definition. It is advisory: an out-of-mode but well-formed
// encoding still decodes, the consumer decides whether to fault.
type Modes uint32

const (
	ModeRing0 Modes = 1 << iota
	ModeRing1
	ModeRing2
	ModeRing3
	ModeReal
	ModeV8086
	ModeProt
	ModeCompat
	ModeLong
	ModeSMM
	ModeSMMOff
	ModeSGX
	ModeTSX
	ModeTSXOff
	ModeVMXRoot
	ModeVMXNonRoot
	ModeVMXOff
	ModeSEAM
)

const (
	// ModesAnyRing matches all privilege levels.
	ModesAnyRing = ModeRing0 | ModeRing1 | ModeRing2 | ModeRing3

	// ModesAnyMode matches all processor operating modes.
	ModesAnyMode = ModeReal | ModeV8086 | ModeProt | ModeCompat | ModeLong

	// ModesAnyMisc matches all miscellaneous execution environments.
	ModesAnyMisc = ModeSMM | ModeSMMOff | ModeSGX | ModeTSX | ModeTSXOff |
		ModeVMXRoot | ModeVMXNonRoot | ModeVMXOff | ModeSEAM

	// ModesAll matches everything. Most instructions carry this.
	ModesAll = ModesAnyRing | ModesAnyMode | ModesAnyMisc

	// ModesNo64 excludes long mode (encodings reclaimed by x86-64).
	ModesNo64 = ModesAll &^ ModeLong

	// ModesOnly64 matches long mode only.
	ModesOnly64 = ModesAnyRing | ModeLong | ModesAnyMisc

	// ModesRing0 restricts to CPL 0 in any operating mode.
	ModesRing0 = ModesAll &^ (ModeRing1 | ModeRing2 | ModeRing3)
)

// bit returns the Modes bit corresponding to a declared decode mode.
func (m Mode) bit() Modes {
	switch m {
	case Mode16:
		return ModeReal
	case Mode32:
		return ModeProt
	case Mode64:
		return ModeLong
	}
	return 0
}

// PrefixSet is a validity bitset of prefixes accepted by an instruction,
// copied from the definition. Like Modes it is advisory only.
type PrefixSet uint16

const (
	PrefixREP            PrefixSet = 1 << iota // F3 as REP
	PrefixREPcc                                // F3/F2 as REPE/REPNE
	PrefixLOCK                                 // F0
	PrefixHLE                                  // F2/F3 as XACQUIRE/XRELEASE with LOCK
	PrefixXACQUIRE                             // F2 without LOCK (HLE-capable stores)
	PrefixXRELEASE                             // F3 without LOCK
	PrefixBND                                  // F2 as BND on branches
	PrefixBHint                                // 2E/3E as branch hints on Jcc
	PrefixHLEWithoutLock                       // HLE legal without LOCK
)
