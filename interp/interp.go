// Package interp is a software model of one RP2040 SIO interpolator: two
// lanes of shift/mask/add hardware over a pair of accumulators and three
// base registers, plus the lane 0 blend mode that performs a fixed-point
// linear interpolation between BASE0 and BASE1.
//
// The model covers the behavior a host program can observe through the
// ACCUM/BASE/PEEK/POP registers; cross-lane routing and the force-MSB bits
// are not modeled.
package interp

// Lane indices.
const (
	Lane0 = 0
	Lane1 = 1
)

// Config holds the per-lane control fields.
type Config struct {
	// Shift is the right shift applied to the accumulator, 0-31.
	Shift uint8

	// MaskLSB and MaskMSB bound the window of bits kept after shifting,
	// both inclusive, 0-31.
	MaskLSB uint8
	MaskMSB uint8

	// Signed sign-extends the masked value from bit MaskMSB.
	Signed bool

	// AddRaw adds the unshifted, unmasked accumulator to the base instead
	// of the masked value.
	AddRaw bool

	// Blend enables blend mode. Only meaningful on lane 0; while set, the
	// low 8 bits of ACCUM1 act as the fraction between BASE0 and BASE1.
	Blend bool
}

// DefaultConfig returns the power-on lane configuration: no shift, full
// 32-bit mask, everything else off.
func DefaultConfig() Config {
	return Config{MaskMSB: 31}
}

// Interp models one interpolator. Accum and Base are directly writable,
// as the hardware registers are.
type Interp struct {
	Accum [2]uint32
	Base  [3]uint32

	cfg [2]Config
}

// New returns an interpolator with both lanes in the default configuration.
func New() *Interp {
	ip := &Interp{}
	ip.cfg[Lane0] = DefaultConfig()
	ip.cfg[Lane1] = DefaultConfig()
	return ip
}

// SetConfig writes a lane's control register.
func (ip *Interp) SetConfig(lane int, cfg Config) {
	ip.cfg[lane] = cfg
}

// laneValue is the shifted, masked, optionally sign-extended accumulator
// for a lane.
func (ip *Interp) laneValue(lane int) uint32 {
	cfg := ip.cfg[lane]
	v := ip.Accum[lane] >> cfg.Shift

	mask := uint32(0xFFFFFFFF)
	if cfg.MaskMSB < cfg.MaskLSB {
		mask = 0
	} else if width := uint32(cfg.MaskMSB) - uint32(cfg.MaskLSB) + 1; width < 32 {
		mask = (1<<width - 1) << cfg.MaskLSB
	}
	v &= mask

	if cfg.Signed && v&(1<<cfg.MaskMSB) != 0 {
		v |= ^(1<<(cfg.MaskMSB+1) - 1)
	}
	return v
}

// alpha is the blend fraction: the low 8 bits of ACCUM1. Values written
// outside 0-255 are truncated, not clamped, so they alias.
func (ip *Interp) alpha() uint32 {
	return ip.Accum[Lane1] & 0xFF
}

// blend computes BASE0 + alpha*(BASE1-BASE0)/256. With lane 1 signed the
// span is treated as a signed quantity.
func (ip *Interp) blend() uint32 {
	a := ip.alpha()
	if ip.cfg[Lane1].Signed {
		span := int64(int32(ip.Base[1])) - int64(int32(ip.Base[0]))
		return uint32(int64(int32(ip.Base[0])) + (span*int64(a))>>8)
	}
	span := int64(ip.Base[1]) - int64(ip.Base[0])
	return uint32(int64(ip.Base[0]) + (span*int64(a))>>8)
}

// result computes the RESULT register for a lane without side effects.
func (ip *Interp) result(lane int) uint32 {
	if ip.cfg[Lane0].Blend {
		// PEEK0/POP0 return the fraction, PEEK1/POP1 the interpolation.
		if lane == Lane0 {
			return ip.alpha()
		}
		return ip.blend()
	}

	cfg := ip.cfg[lane]
	if cfg.AddRaw {
		return ip.Base[lane] + ip.Accum[lane]
	}
	return ip.Base[lane] + ip.laneValue(lane)
}

// Peek reads a lane result without updating the accumulators.
func (ip *Interp) Peek(lane int) uint32 {
	return ip.result(lane)
}

// Pop reads a lane result and performs the accumulator writeback
// (ACCUM0 <- RESULT0, ACCUM1 <- RESULT1). In blend mode the writeback is
// suppressed and Pop behaves like Peek, since the lane results are the
// fraction and the interpolation rather than accumulator successors.
func (ip *Interp) Pop(lane int) uint32 {
	r := ip.result(lane)
	if !ip.cfg[Lane0].Blend {
		ip.writeback()
	}
	return r
}

// PeekFull reads RESULT2: BASE2 plus the lane values. In blend mode lane 1
// is excluded from the sum.
func (ip *Interp) PeekFull() uint32 {
	if ip.cfg[Lane0].Blend {
		return ip.Base[2] + ip.laneValue(Lane0)
	}
	return ip.Base[2] + ip.laneValue(Lane0) + ip.laneValue(Lane1)
}

// PopFull reads RESULT2 and performs the accumulator writeback.
func (ip *Interp) PopFull() uint32 {
	r := ip.PeekFull()
	if !ip.cfg[Lane0].Blend {
		ip.writeback()
	}
	return r
}

func (ip *Interp) writeback() {
	r0 := ip.result(Lane0)
	r1 := ip.result(Lane1)
	ip.Accum[Lane0] = r0
	ip.Accum[Lane1] = r1
}
