//go:build rp2040 || rp2350

package main

import "machine"

var sensor machine.ADC

// InitADC powers up the ADC and configures the sense channel on ADC0.
func InitADC() {
	machine.InitADC()
	sensor = machine.ADC{Pin: machine.ADC0}
	sensor.Configure(machine.ADCConfig{})
}

// ReadRaw returns a one-shot 12-bit reading (0-4095). machine.ADC.Get
// left-aligns to 16 bits, so shift back down to match the calibrated
// range's scale.
func ReadRaw() int32 {
	return int32(sensor.Get() >> 4)
}
