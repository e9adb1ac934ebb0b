// package x86dec provides an x86/x86-64 machine-code decoder in Go
//
// The decoder turns a byte slice into a fixed-size instruction record: the
// mnemonic, the decoded operands with sizes and access modes, the prefix
// state, the flags-access summary, and the byte extents of every encoding
// field. Decoding never allocates and a Decoder may be shared by any number
// of goroutines.
//
// usage example:
//
//	package example
//
//	import (
//		"fmt"
//
//		"github.com/wdamron/x86dec"
//	)
//
//	func DumpCode(code []byte) error {
//		dec := x86dec.NewDecoder(x86dec.Mode64)
//		for len(code) > 0 {
//			inst, err := dec.Decode(code)
//			if err != nil {
//				return err
//			}
//
//			fmt.Println(inst.Mnemonic, inst.Args())
//			code = code[inst.Len:]
//		}
//		return nil
//	}
package x86dec
