package solve

import (
	"context"
	"errors"

	"github.com/katalvlaran/maxcut/bqm"
	"github.com/katalvlaran/maxcut/cut"
	"github.com/katalvlaran/maxcut/graph"
)

// Default sampling knobs, matching the classic QPU submission values.
const (
	DefaultReadCount     = 10
	DefaultChainStrength = 3.0
	DefaultSweeps        = 1000
)

// Sentinel errors for sampler configuration and input.
var (
	// ErrNilModel indicates a nil model submission.
	ErrNilModel = errors.New("solve: nil model")

	// ErrNoVariables indicates a model with an empty variable set.
	ErrNoVariables = errors.New("solve: model has no variables")

	// ErrBadReadCount indicates a non-positive ReadCount.
	ErrBadReadCount = errors.New("solve: read count must be positive")

	// ErrBadChainStrength indicates a non-positive ChainStrength.
	ErrBadChainStrength = errors.New("solve: chain strength must be positive")

	// ErrBadSweeps indicates a non-positive Sweeps.
	ErrBadSweeps = errors.New("solve: sweeps must be positive")

	// ErrTooManyVariables indicates a model beyond the exhaustive-search cap.
	ErrTooManyVariables = errors.New("solve: too many variables for brute force")
)

// Options carries the numeric sampling knobs.
//
// ChainStrength is the penalty for keeping physically-chained hardware
// variables aligned. Local samplers have no chains; the value is carried
// through to remote Solver implementations opaquely and only validated
// for positivity.
type Options struct {
	// ReadCount is the number of independent solution samples to request.
	ReadCount int

	// ChainStrength is the opaque hardware chain penalty (see above).
	ChainStrength float64

	// Seed drives every stochastic sampler; 0 selects a fixed default
	// seed, never a time-based source.
	Seed int64

	// Sweeps is the number of full variable passes per annealing read.
	Sweeps int
}

// DefaultOptions returns the canonical knob values.
func DefaultOptions() Options {
	return Options{
		ReadCount:     DefaultReadCount,
		ChainStrength: DefaultChainStrength,
		Sweeps:        DefaultSweeps,
	}
}

// validate rejects out-of-range knobs with the matching sentinel.
func (o Options) validate() error {
	if o.ReadCount <= 0 {
		return ErrBadReadCount
	}
	if o.ChainStrength <= 0 {
		return ErrBadChainStrength
	}
	if o.Sweeps <= 0 {
		return ErrBadSweeps
	}

	return nil
}

// Result is the best sample a Solver found: a complete binary assignment
// and its energy evaluated against the submitted model.
type Result struct {
	Assignment cut.Assignment
	Energy     float64
}

// Solver is the capability abstraction over combinatorial samplers: one
// synchronous, cancellable request per model. Implementations must be
// safe for concurrent use across independent models.
type Solver interface {
	Sample(ctx context.Context, m *bqm.Model, opts Options) (Result, error)
}

// checkModel performs the validation shared by the local samplers and
// returns the model's sorted variable list.
func checkModel(m *bqm.Model, opts Options) ([]graph.Node, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	vars := m.Variables()
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}

	return vars, nil
}
