package x86dec

// Extended-prefix escapes share their opcode bytes with legacy instructions
// outside 64-bit mode (C4/C5 LES/LDS, 62 BOUND, 8F POP). The disambiguation
// rule is architectural: outside 64-bit mode the byte after the escape must
// have both top bits set; 8F opens XOP only when its map-select field is 8
// or higher in any mode.

// isEscape reports whether b opens a VEX/XOP/EVEX escape in the current
// mode. It peeks one byte past b and never consumes.
func (d *decodeState) isEscape(b byte) (bool, error) {
	switch b {
	case 0xC4, 0xC5, 0x62:
		if d.mode == Mode64 {
			return true, nil
		}
		next, err := d.r.peekAt(1)
		if err != nil {
			// 16/32-bit: a lone C4/C5/62 is a legacy instruction head, so a
			// missing next byte is the legacy instruction's problem.
			return false, nil
		}
		return next&0xC0 == 0xC0, nil
	case 0x8F:
		next, err := d.r.peekAt(1)
		if err != nil {
			return false, nil
		}
		if next&0x1f < 8 {
			return false, nil // POP r/m
		}
		if d.mode == Mode64 {
			return true, nil
		}
		return next&0xC0 == 0xC0, nil
	}
	return false, nil
}

// scanEscape consumes one VEX/XOP/EVEX escape sequence, which must be the
// final prefix material before the opcode. An escape is mutually exclusive
// with REX, LOCK and the legacy SIMD prefixes; their presence makes the
// encoding undefined.
func (d *decodeState) scanEscape(esc byte) error {
	p := &d.prefixes
	if p.Rex != 0 || p.Lock || p.Rep != 0 || p.OpSizeOvr {
		return decodeErr(d.r.pos(), ErrInvalidEncoding)
	}
	d.r.advance() // the escape byte itself

	v := &p.Vex
	switch esc {
	case 0xC5:
		b1, err := d.r.byte()
		if err != nil {
			return err
		}
		v.Kind = escVex2
		v.R = b1&0x80 == 0
		v.Vvvv = ^(b1 >> 3) & 0xf
		v.LL = (b1 >> 2) & 1
		v.PP = b1 & 3
		v.Map = 1

	case 0xC4, 0x8F:
		b1, err := d.r.byte()
		if err != nil {
			return err
		}
		b2, err := d.r.byte()
		if err != nil {
			return err
		}
		if esc == 0xC4 {
			v.Kind = escVex3
		} else {
			v.Kind = escXop
		}
		v.R = b1&0x80 == 0
		v.X = b1&0x40 == 0
		v.B = b1&0x20 == 0
		v.Map = b1 & 0x1f
		v.W = b2&0x80 != 0
		v.Vvvv = ^(b2 >> 3) & 0xf
		v.LL = (b2 >> 2) & 1
		v.PP = b2 & 3
		if v.Kind == escVex3 && (v.Map == 0 || v.Map > 3) {
			return decodeErr(d.r.pos(), ErrInvalidEncoding)
		}
		if v.Kind == escXop && (v.Map < 8 || v.Map > 10) {
			return decodeErr(d.r.pos(), ErrInvalidEncoding)
		}

	case 0x62:
		b1, err := d.r.byte()
		if err != nil {
			return err
		}
		b2, err := d.r.byte()
		if err != nil {
			return err
		}
		b3, err := d.r.byte()
		if err != nil {
			return err
		}
		// P0 bits 3:2 and the fixed-1 bit of P1 are architectural.
		if b1&0x0C != 0 || b2&0x04 == 0 {
			return decodeErr(d.r.pos(), ErrInvalidEncoding)
		}
		v.Kind = escEvex
		v.R = b1&0x80 == 0
		v.X = b1&0x40 == 0
		v.B = b1&0x20 == 0
		v.RP = b1&0x10 == 0
		v.Map = b1 & 3
		if v.Map == 0 {
			return decodeErr(d.r.pos(), ErrInvalidEncoding)
		}
		v.W = b2&0x80 != 0
		v.Vvvv = ^(b2 >> 3) & 0xf
		v.PP = b2 & 3
		v.Z = b3&0x80 != 0
		v.LL = (b3 >> 5) & 3
		v.Bcst = b3&0x10 != 0
		v.VP = b3&0x08 == 0
		v.Aaa = b3 & 7
	}
	return nil
}
