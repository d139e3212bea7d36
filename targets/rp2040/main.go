//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"picointerp/remap"
)

// Demo ranges: raw ADC readings calibrated on the bench to [900, 2800],
// mapped onto the expected [1000, 3000].
var (
	calibrated = remap.Range{Low: 900, High: 2800}
	expected   = remap.Range{Low: 1000, High: 3000}
)

func main() {
	// Give the USB CDC console time to enumerate before printing.
	time.Sleep(2 * time.Second)

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	InitADC()

	timesTable()
	blending()
	adcLinearInterpolation()

	// Stream raw readings for the host: one decimal value per line.
	for {
		println("Enabling LED")
		led.High()
		streamSamples(10)

		println("Disabling LED")
		led.Low()
		streamSamples(10)
	}
}

// streamSamples prints n raw ADC readings at 100ms intervals.
func streamSamples(n int) {
	for i := 0; i < n; i++ {
		println(ReadRaw())
		time.Sleep(100 * time.Millisecond)
	}
}

// timesTable runs INTERP0 lane 0 in accumulate mode: accumulator starts at
// zero, BASE0 holds the increment, each pop returns the next multiple.
func timesTable() {
	println("9 times table:")

	interpSetCtrl(0, interpDefaultCtrl)
	interpSetAccum(0, 0)
	interpSetBase(0, 9)

	println("Peek: 9 x 1 =", interpPeek(0))
	for i := 1; i <= 10; i++ {
		println("Pop: 9 x", i, "=", interpPop(0))
	}
}

// blending interpolates between BASE0 and BASE1 with the fraction in the
// low 8 bits of ACCUM1. The fraction can never be exactly 1, so the top
// step lands just short of BASE1.
func blending() {
	println("Blending:")

	interpSetCtrl(0, interpDefaultCtrl|interpCtrlBlend)
	interpSetCtrl(1, interpDefaultCtrl)

	interpSetBase(0, 500)  // x0
	interpSetBase(1, 1000) // x1

	for i := uint32(0); i <= 6; i++ {
		interpSetAccum(1, 255*i/6)
		println(interpPeek(1))
	}
}

// adcLinearInterpolation remaps a live ADC reading, comparing the software
// division against the interpolator's fixed-point result and its corrected
// variant.
func adcLinearInterpolation() {
	println("ADC Linear Interpolation")

	interpSetCtrl(0, interpDefaultCtrl|interpCtrlBlend)
	interpSetCtrl(1, interpDefaultCtrl)
	interpSetBase(0, uint32(expected.Low))
	interpSetBase(1, uint32(expected.High))

	rawVal := ReadRaw()
	interpSetAccum(1, uint32(255*(rawVal-calibrated.Low)/calibrated.Span()))

	software, err := remap.MapExact(rawVal, calibrated, expected)
	if err != nil {
		println("remap error:", err.Error())
		return
	}
	hardware := int32(interpPeek(1))
	corrected := hardware + hardware>>8

	println("Raw:", rawVal)
	println("Software:", software)
	println("HW Accelerated:", hardware)
	println("HW Accelerated (Corrected):", corrected)

	for adcVal := int32(1000); adcVal <= calibrated.High; adcVal += 100 {
		interpSetAccum(1, uint32(255*(adcVal-calibrated.Low)/calibrated.Span()))

		soft, _ := remap.MapExact(adcVal, calibrated, expected)
		hw := int32(interpPeek(1))
		hwCorrected := hw + hw>>8

		println("Interpolating", adcVal, "-> software", soft,
			"hw", hw, "corrected", hwCorrected)
	}
}
