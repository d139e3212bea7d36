//go:build rp2040 || rp2350

package main

import "device/rp"

// INTERP0 CTRL_LANEx fields (RP2040 datasheet 2.3.1.9).
const (
	interpCtrlShiftPos   = 0
	interpCtrlMaskLSBPos = 5
	interpCtrlMaskMSBPos = 10
	interpCtrlSigned     = 1 << 15
	interpCtrlAddRaw     = 1 << 18
	interpCtrlBlend      = 1 << 21 // lane 0 only
)

// interpDefaultCtrl is the power-on lane control: no shift, full
// 31:0 mask window.
const interpDefaultCtrl = 31 << interpCtrlMaskMSBPos

// interpSetCtrl writes a lane control register on INTERP0.
func interpSetCtrl(lane int, ctrl uint32) {
	if lane == 0 {
		rp.SIO.INTERP0_CTRL_LANE0.Set(ctrl)
	} else {
		rp.SIO.INTERP0_CTRL_LANE1.Set(ctrl)
	}
}

func interpSetAccum(lane int, v uint32) {
	if lane == 0 {
		rp.SIO.INTERP0_ACCUM0.Set(v)
	} else {
		rp.SIO.INTERP0_ACCUM1.Set(v)
	}
}

func interpSetBase(idx int, v uint32) {
	switch idx {
	case 0:
		rp.SIO.INTERP0_BASE0.Set(v)
	case 1:
		rp.SIO.INTERP0_BASE1.Set(v)
	case 2:
		rp.SIO.INTERP0_BASE2.Set(v)
	}
}

// interpPeek reads a lane result without the accumulator writeback.
func interpPeek(lane int) uint32 {
	if lane == 0 {
		return rp.SIO.INTERP0_PEEK_LANE0.Get()
	}
	return rp.SIO.INTERP0_PEEK_LANE1.Get()
}

// interpPop reads a lane result and advances the accumulators.
func interpPop(lane int) uint32 {
	if lane == 0 {
		return rp.SIO.INTERP0_POP_LANE0.Get()
	}
	return rp.SIO.INTERP0_POP_LANE1.Get()
}
