package direct

// Float constrains the sample type of a [Filter]. Designs are always
// derived in float64; float32 halves the state footprint for hot loops
// on constrained targets.
type Float interface {
	~float32 | ~float64
}

// Filter is a direct-form-I recursive filter of fixed coefficient count.
// It owns private copies of its coefficients and two history windows
// (most recent sample first), so instances never alias caller memory.
//
// A Filter is not safe for concurrent use; each signal channel needs its
// own instance.
type Filter[T Float] struct {
	natural []T
	forced  []T

	inputs  []T // x(n), x(n-1), ... newest first
	outputs []T // y(n), y(n-1), ... newest first
}

// New returns a Filter holding private copies of the coefficients with
// zero-filled history. The coefficients are validated once here; the
// per-sample path performs no checks.
func New[T Float](c Coefficients) (*Filter[T], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := c.Len()
	f := &Filter[T]{
		natural: make([]T, n),
		forced:  make([]T, n),
		inputs:  make([]T, n),
		outputs: make([]T, n),
	}
	f.storeCoefficients(c)

	return f, nil
}

func (f *Filter[T]) storeCoefficients(c Coefficients) {
	for i := range c.Natural {
		f.natural[i] = T(c.Natural[i])
		f.forced[i] = T(c.Forced[i])
	}
}

// Len returns the coefficient count N.
func (f *Filter[T]) Len() int {
	return len(f.natural)
}

// ProcessSample applies the difference equation to one input sample and
// returns the new output. Allocation-free, O(N).
func (f *Filter[T]) ProcessSample(x T) T {
	n := len(f.forced)

	for i := n - 1; i > 0; i-- {
		f.inputs[i] = f.inputs[i-1]
	}
	f.inputs[0] = x

	var sum T
	for i := range n {
		sum += f.forced[i] * f.inputs[i]
	}

	// Feedback terms: natural[k] multiplies y(n-k) for k >= 1.
	for i := 0; i < n-1; i++ {
		sum -= f.natural[i+1] * f.outputs[i]
	}

	sum /= f.natural[0]

	for i := n - 1; i > 0; i-- {
		f.outputs[i] = f.outputs[i-1]
	}
	f.outputs[0] = sum

	return sum
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (f *Filter[T]) ProcessBlock(buf []T) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset zero-fills both history windows, keeping the coefficients.
// Returns 0, mirroring what LastOutput would now report.
func (f *Filter[T]) Reset() T {
	return f.Fill(0)
}

// Fill sets every history entry to value and returns it. Filling with a
// known DC input pre-seeds steady state for a unity-DC-gain filter, so
// the first ProcessSample call produces no startup transient.
func (f *Filter[T]) Fill(value T) T {
	for i := range f.inputs {
		f.inputs[i] = value
		f.outputs[i] = value
	}

	return value
}

// SetCoefficients replaces the stored coefficients without touching the
// history windows. This is a deliberate contrast to Reset: it allows
// retuning a filter mid-stream. Callers that also want a clean state
// must call Reset themselves. The replacement must keep the same
// coefficient count.
func (f *Filter[T]) SetCoefficients(c Coefficients) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Len() != len(f.natural) {
		return ErrLengthMismatch
	}

	f.storeCoefficients(c)

	return nil
}

// LastOutput returns the most recent output without consuming input.
func (f *Filter[T]) LastOutput() T {
	return f.outputs[0]
}

// State returns copies of the input and output history windows, newest
// sample first.
func (f *Filter[T]) State() (inputs, outputs []T) {
	inputs = make([]T, len(f.inputs))
	outputs = make([]T, len(f.outputs))
	copy(inputs, f.inputs)
	copy(outputs, f.outputs)

	return inputs, outputs
}

// SetState restores history windows previously captured with State.
// Both slices must match the coefficient count.
func (f *Filter[T]) SetState(inputs, outputs []T) error {
	if len(inputs) != len(f.inputs) || len(outputs) != len(f.outputs) {
		return ErrLengthMismatch
	}

	copy(f.inputs, inputs)
	copy(f.outputs, outputs)

	return nil
}

// ImpulseResponse computes n samples of the impulse response by feeding
// a unit impulse through the filter. The history is saved and restored,
// so this does not disturb a streaming filter.
func (f *Filter[T]) ImpulseResponse(n int) []T {
	if n <= 0 {
		return nil
	}

	savedIn, savedOut := f.State()
	f.Reset()

	ir := make([]T, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}

	_ = f.SetState(savedIn, savedOut)

	return ir
}
