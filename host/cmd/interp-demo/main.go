// interp-demo runs the RP2040 SIO interpolator demos against the software
// model: the 9-times table (accumulate mode), blend-mode interpolation, and
// ADC range remapping. With -device it instead reads live raw samples from
// a serial port, derives a calibrated range from the first readings, and
// streams remapped values.
package main

import (
	"flag"
	"fmt"
	"os"

	"picointerp/calibrate"
	"picointerp/host/sampler"
	"picointerp/host/serial"
	"picointerp/interp"
	"picointerp/remap"
)

var (
	demo      = flag.String("demo", "all", "Demo to run: times, blend, adc or all")
	device    = flag.String("device", "", "Serial device streaming raw samples (e.g. /dev/ttyACM0)")
	baud      = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	window    = flag.Int("samples", 32, "Calibration window size for -device mode")
	targetLow = flag.Int("target-low", 1000, "Low bound of the target range")
	targetHi  = flag.Int("target-high", 3000, "High bound of the target range")
)

func main() {
	flag.Parse()

	if *device != "" {
		if err := streamDevice(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch *demo {
	case "times":
		timesTable()
	case "blend":
		blending()
	case "adc":
		adcLinearInterpolation()
	case "all":
		timesTable()
		blending()
		adcLinearInterpolation()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", *demo)
		os.Exit(1)
	}
}

// timesTable drives a lane in accumulate mode: with the increment in BASE0,
// every pop returns the next multiple.
func timesTable() {
	fmt.Println("9 times table:")

	ip := interp.New()
	ip.Accum[interp.Lane0] = 0
	ip.Base[interp.Lane0] = 9

	fmt.Printf("Peek: 9 x 1 = %d\n", ip.Peek(interp.Lane0))
	for i := 1; i <= 10; i++ {
		fmt.Printf("Pop: 9 x %d = %d\n", i, ip.Pop(interp.Lane0))
	}
}

// blending interpolates between 500 and 1000 at fractions i/6. The 8-bit
// fraction can never be exactly 1, so the last step lands just short.
func blending() {
	fmt.Println("Blending:")

	ip := interp.New()
	cfg := interp.DefaultConfig()
	cfg.Blend = true
	ip.SetConfig(interp.Lane0, cfg)

	ip.Base[0] = 500  // x0
	ip.Base[1] = 1000 // x1

	for i := uint32(0); i <= 6; i++ {
		ip.Accum[interp.Lane1] = 255 * i / 6
		fmt.Printf("%d\n", ip.Peek(interp.Lane1))
	}
}

// adcLinearInterpolation remaps raw ADC readings from a calibrated range
// onto the expected range, comparing the exact software result against the
// interpolator's fixed-point one and its corrected variant.
func adcLinearInterpolation() {
	fmt.Println("ADC Linear Interpolation")

	expected := remap.Range{Low: int32(*targetLow), High: int32(*targetHi)}
	calibrated := remap.Range{Low: 900, High: 2800}

	ip := interp.New()
	cfg := interp.DefaultConfig()
	cfg.Blend = true
	ip.SetConfig(interp.Lane0, cfg)
	ip.Base[0] = uint32(expected.Low)
	ip.Base[1] = uint32(expected.High)

	rawVal := int32(1500)
	ip.Accum[interp.Lane1] = uint32(255 * (rawVal - calibrated.Low) / calibrated.Span())

	software, err := remap.MapExact(rawVal, calibrated, expected)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	hardware := int32(ip.Peek(interp.Lane1))
	corrected := hardware + hardware>>8

	fmt.Printf("Software: %d\n", software)
	fmt.Printf("HW Accelerated: %d\n", hardware)
	fmt.Printf("HW Accelerated (Corrected): %d\n", corrected)

	for adcVal := int32(1000); adcVal <= calibrated.High; adcVal += 100 {
		ip.Accum[interp.Lane1] = uint32(255 * (adcVal - calibrated.Low) / calibrated.Span())

		soft, _ := remap.MapExact(adcVal, calibrated, expected)
		hw := int32(ip.Peek(interp.Lane1))
		hwCorrected := hw + hw>>8

		fmt.Printf("Interpolating %d (actual) between calibrated range (%d, %d) and mapping to expected range (%d, %d)\n",
			adcVal,
			calibrated.Low, calibrated.High,
			expected.Low, expected.High,
		)
		fmt.Printf("- Software: %d\n", soft)
		fmt.Printf("- HW Accelerated: %d\n", hw)
		fmt.Printf("- HW Accelerated (Corrected): %d\n\n", hwCorrected)
	}
}

// streamDevice calibrates from the first readings on the serial port, then
// remaps the rest of the stream.
func streamDevice() error {
	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	fmt.Printf("Collecting %d samples from %s for calibration...\n", *window, *device)
	samples, err := sampler.Collect(port, *window)
	if err != nil {
		return err
	}

	calibrated, err := calibrate.Trimmed(samples, 2)
	if err != nil {
		return fmt.Errorf("calibration failed: %w", err)
	}
	target := remap.Range{Low: int32(*targetLow), High: int32(*targetHi)}
	fmt.Printf("Calibrated range: (%d, %d), target range: (%d, %d)\n",
		calibrated.Low, calibrated.High, target.Low, target.High)

	s, err := sampler.New(calibrated, target, func(r sampler.Reading) {
		fmt.Printf("raw=%d exact=%d approx=%d corrected=%d\n",
			r.Raw, r.Exact, r.Approx, r.Corrected)
	})
	if err != nil {
		return err
	}
	return s.Run(port)
}
