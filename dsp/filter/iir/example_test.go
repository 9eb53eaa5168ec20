package iir_test

import (
	"fmt"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/filter/iir"
)

func ExampleButterworthLowpass() {
	tf, err := iir.ButterworthLowpass(250, 2000, 2)
	if err != nil {
		panic(err)
	}
	fmt.Printf("b=%.4f\n", tf.B)
	fmt.Printf("a=%.4f\n", tf.A)
	fmt.Printf("dc=%.3f\n", tf.DCGain())
	// Output:
	// b=[0.0976 0.1953 0.0976]
	// a=[1.0000 -0.9428 0.3333]
	// dc=1.000
}

func ExampleLowpass() {
	y, err := iir.Lowpass([]float64{1, 1, 1, 1, 1}, 500, 2000, 1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f\n", y)
	// Output:
	// [0.50 1.00 1.00 1.00 1.00]
}
