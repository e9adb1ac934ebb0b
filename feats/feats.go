package feats

type Feature uint32

// CPU Features
const (
	X64_IMPLICIT Feature = 0
	FPU          Feature = 1 << iota
	MMX
	SSE
	SSE2
	SSE3
	SSSE3
	SSE41
	SSE42
	AVX
	AVX2
	AVX512F
	FMA
	BMI1
	BMI2
	TBM
	LZCNT
	POPCNT
	MOVBE
	RTM
	MPX
	SHA
	RDRAND
	RDSEED
	CX8
	CX16
	CMOV
	TSC
	MSR
	VMX
	SMX
	LONGMODE
)

const AllFeatures Feature = 0xffffffff

func FeatName(f Feature) string { return featNames[f] }

var featNames = map[Feature]string{
	X64_IMPLICIT: "X64_IMPLICIT",
	FPU:          "FPU",
	MMX:          "MMX",
	SSE:          "SSE",
	SSE2:         "SSE2",
	SSE3:         "SSE3",
	SSSE3:        "SSSE3",
	SSE41:        "SSE41",
	SSE42:        "SSE42",
	AVX:          "AVX",
	AVX2:         "AVX2",
	AVX512F:      "AVX512F",
	FMA:          "FMA",
	BMI1:         "BMI1",
	BMI2:         "BMI2",
	TBM:          "TBM",
	LZCNT:        "LZCNT",
	POPCNT:       "POPCNT",
	MOVBE:        "MOVBE",
	RTM:          "RTM",
	MPX:          "MPX",
	SHA:          "SHA",
	RDRAND:       "RDRAND",
	RDSEED:       "RDSEED",
	CX8:          "CX8",
	CX16:         "CX16",
	CMOV:         "CMOV",
	TSC:          "TSC",
	MSR:          "MSR",
	VMX:          "VMX",
	SMX:          "SMX",
	LONGMODE:     "LONGMODE",
}

// CPUID registers referenced by CPUIDRef.
const (
	RegEAX = iota
	RegEBX
	RegECX
	RegEDX
)

// CPUIDRef locates the feature bit a definition depends on: execute CPUID
// with EAX=Leaf (and ECX=Subleaf when SubleafValid), then test Bit of the
// named output register.
type CPUIDRef struct {
	Leaf         uint32
	Subleaf      uint32
	SubleafValid bool
	Reg          uint8
	Bit          uint8
}

// Ref returns the CPUID feature bit reference for a feature. The zero
// CPUIDRef means the feature needs no CPUID check (baseline ISA).
func Ref(f Feature) CPUIDRef { return cpuidRefs[f] }

var cpuidRefs = map[Feature]CPUIDRef{
	FPU:     {Leaf: 1, Reg: RegEDX, Bit: 0},
	TSC:     {Leaf: 1, Reg: RegEDX, Bit: 4},
	MSR:     {Leaf: 1, Reg: RegEDX, Bit: 5},
	CX8:     {Leaf: 1, Reg: RegEDX, Bit: 8},
	CMOV:    {Leaf: 1, Reg: RegEDX, Bit: 15},
	MMX:     {Leaf: 1, Reg: RegEDX, Bit: 23},
	SSE:     {Leaf: 1, Reg: RegEDX, Bit: 25},
	SSE2:    {Leaf: 1, Reg: RegEDX, Bit: 26},
	SSE3:    {Leaf: 1, Reg: RegECX, Bit: 0},
	VMX:     {Leaf: 1, Reg: RegECX, Bit: 5},
	SMX:     {Leaf: 1, Reg: RegECX, Bit: 6},
	SSSE3:   {Leaf: 1, Reg: RegECX, Bit: 9},
	FMA:     {Leaf: 1, Reg: RegECX, Bit: 12},
	CX16:    {Leaf: 1, Reg: RegECX, Bit: 13},
	SSE41:   {Leaf: 1, Reg: RegECX, Bit: 19},
	SSE42:   {Leaf: 1, Reg: RegECX, Bit: 20},
	MOVBE:   {Leaf: 1, Reg: RegECX, Bit: 22},
	POPCNT:  {Leaf: 1, Reg: RegECX, Bit: 23},
	AVX:     {Leaf: 1, Reg: RegECX, Bit: 28},
	RDRAND:  {Leaf: 1, Reg: RegECX, Bit: 30},
	BMI1:    {Leaf: 7, Subleaf: 0, SubleafValid: true, Reg: RegEBX, Bit: 3},
	AVX2:    {Leaf: 7, Subleaf: 0, SubleafValid: true, Reg: RegEBX, Bit: 5},
	BMI2:    {Leaf: 7, Subleaf: 0, SubleafValid: true, Reg: RegEBX, Bit: 8},
	RTM:     {Leaf: 7, Subleaf: 0, SubleafValid: true, Reg: RegEBX, Bit: 11},
	MPX:     {Leaf: 7, Subleaf: 0, SubleafValid: true, Reg: RegEBX, Bit: 14},
	AVX512F: {Leaf: 7, Subleaf: 0, SubleafValid: true, Reg: RegEBX, Bit: 16},
	RDSEED:  {Leaf: 7, Subleaf: 0, SubleafValid: true, Reg: RegEBX, Bit: 18},
	SHA:     {Leaf: 7, Subleaf: 0, SubleafValid: true, Reg: RegEBX, Bit: 29},
	LZCNT:   {Leaf: 0x80000001, Reg: RegECX, Bit: 5},
	TBM:     {Leaf: 0x80000001, Reg: RegECX, Bit: 21},
	LONGMODE: {
		Leaf: 0x80000001, Reg: RegEDX, Bit: 29,
	},
}
