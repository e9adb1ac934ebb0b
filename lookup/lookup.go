package x86declookup

import (
	"github.com/wdamron/x86dec"
)

const maxMnemonicLength = 16

// Lookup the mnemonic identifier for a name. The name will be converted to
// uppercase if necessary. Condition-coded families are registered under
// their collective names (JCC, SETCC, CMOVCC).
func Mnemonic(name string) (x86dec.Mnemonic, bool) {
	if len(name) < maxMnemonicLength {
		m, ok := mnemonicMap[upperCase(name)]
		return m, ok
	}
	return x86dec.Mnemonic(0), false
}

var mnemonicMap = make(map[string]x86dec.Mnemonic, x86dec.MnemonicCount())

func init() {
	for m := x86dec.Mnemonic(1); int(m) < x86dec.MnemonicCount(); m++ {
		mnemonicMap[upperCase(m.Name())] = m
	}
}

func upperCase(s string) string {
	var b [maxMnemonicLength]byte
	var ch byte
	_ = b[len(s)] // lift bounds-checks out of the loop below (golang.org/issue/14808)
	i, changed := 0, false
loop: // functions containing for-loops cannot currently be inlined (golang.org/issue/14768)
	ch = s[i]
	b[i] = ch &^ ((ch & 0x40) >> 1)
	changed = changed || b[i] != ch
	i++
	if i < len(s) {
		goto loop
	}
	if !changed {
		return s
	}
	return string(b[:len(s)])
}
