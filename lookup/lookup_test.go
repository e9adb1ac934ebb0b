package x86declookup

import (
	"testing"

	"github.com/wdamron/x86dec"
)

func TestLookup(t *testing.T) {
	m, ok := Mnemonic("mov")
	if !ok {
		t.Fatal("failed to find mov")
	}
	if m.Name() != "MOV" {
		t.Fatalf("mov resolved to %s", m.Name())
	}
	if _, ok = Mnemonic("MOV"); !ok {
		t.Fatal("failed to find MOV")
	}
	if _, ok = Mnemonic("jcc"); !ok {
		t.Fatal("failed to find jcc")
	}
	if _, ok = Mnemonic("NOTANOPCODE"); ok {
		t.Fatal("found NOTANOPCODE")
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for m := x86dec.Mnemonic(1); int(m) < x86dec.MnemonicCount(); m++ {
		got, ok := Mnemonic(m.Name())
		if !ok {
			t.Fatalf("missing %s", m.Name())
		}
		if got != m {
			t.Fatalf("%s resolved to %s", m.Name(), got.Name())
		}
	}
}
