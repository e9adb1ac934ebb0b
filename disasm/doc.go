// package disasm decodes Go functions at runtime.
//
// example usage:
//
//	package example
//
//	import (
//		"fmt"
//
//		"github.com/wdamron/x86dec"
//		"github.com/wdamron/x86dec/disasm"
//	)
//
//	func sum(a, b int) int { return a + b }
//
//	func DumpSum() error {
//		insts := make([]x86dec.Inst, 0, 16)
//		takeWhile := func(inst x86dec.Inst) bool {
//			insts = append(insts, inst)
//			return inst.Mnemonic != x86dec.RET
//		}
//		if err := disasm.Func(sum, takeWhile); err != nil {
//			return err
//		}
//
//		for _, inst := range insts {
//			fmt.Println(inst.Mnemonic, inst.Args())
//		}
//
//		return nil
//	}
package disasm
