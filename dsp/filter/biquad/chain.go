package biquad

// Chain runs sections in series, the output of each feeding the next.
// Butterworth designs above order 2 are built this way.
type Chain struct {
	gain     float64
	sections []Section
}

// ChainOption adjusts NewChain.
type ChainOption func(*Chain)

// WithGain scales the input before the first section. Default 1.
func WithGain(g float64) ChainOption {
	return func(c *Chain) { c.gain = g }
}

// NewChain returns a cascade with zeroed state, one Section per entry of
// coeffs.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	c := &Chain{gain: 1, sections: make([]Section, len(coeffs))}
	for i, k := range coeffs {
		c.sections[i].Coefficients = k
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProcessSample pushes one sample through the cascade.
func (c *Chain) ProcessSample(x float64) float64 {
	y := c.gain * x
	for i := range c.sections {
		y = c.sections[i].ProcessSample(y)
	}
	return y
}

// ProcessBlock filters buf in place.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i := range buf {
			buf[i] *= c.gain
		}
	}
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Filter returns a filtered copy of x. State carries over between calls;
// Reset starts a fresh run.
func (c *Chain) Filter(x []float64) []float64 {
	y := append([]float64(nil), x...)
	c.ProcessBlock(y)
	return y
}

// Reset zeroes every delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of sections.
func (c *Chain) NumSections() int { return len(c.sections) }

// Order sums the section orders; a first-order tail counts as 1.
func (c *Chain) Order() int {
	n := 2 * len(c.sections)
	for i := range c.sections {
		if c.sections[i].IsFirstOrder() {
			n--
		}
	}
	return n
}

// Coefficients returns a copy of the section coefficients in cascade order.
func (c *Chain) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i, s := range c.sections {
		out[i] = s.Coefficients
	}
	return out
}
