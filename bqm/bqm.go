package bqm

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/maxcut/graph"
	"github.com/katalvlaran/maxcut/ising"
	"github.com/katalvlaran/maxcut/qubo"
)

// Sentinel errors for model packaging and evaluation.
var (
	// ErrInvalidShape indicates coefficients that cannot be represented
	// without changing the model (diagonal quadratic key, colliding
	// unordered pairs).
	ErrInvalidShape = errors.New("bqm: invalid model shape")

	// ErrMissingVariable indicates a sample that does not cover every
	// model variable.
	ErrMissingVariable = errors.New("bqm: sample missing variable")

	// ErrInvalidSample indicates a sample value outside the vartype
	// domain ({0,1} for Binary, {−1,+1} for Spin).
	ErrInvalidSample = errors.New("bqm: sample value outside vartype domain")
)

// Vartype tags the variable domain of a Model.
type Vartype int

const (
	// Binary: variables take values in {0, 1}.
	Binary Vartype = iota

	// Spin: variables take values in {−1, +1}.
	Spin
)

// String returns the conventional vartype name.
func (v Vartype) String() string {
	if v == Spin {
		return "SPIN"
	}

	return "BINARY"
}

// Model is a binary quadratic model: E(z) = Σ Linear_i·z_i +
// Σ Quadratic_uv·z_u·z_v + Offset, with z in the Vartype domain.
type Model struct {
	Vartype   Vartype
	Linear    map[graph.Node]float64
	Quadratic map[graph.Edge]float64
	Offset    float64
}

// FromQUBO repackages a QUBO into a Binary-vartype Model. Diagonal terms
// become linear biases, off-diagonal terms quadratic couplings; the
// offset is zero and no coefficient value changes.
//
// Errors: ErrInvalidShape when two off-diagonal terms collapse to the
// same unordered pair (the repackaging would have to merge them).
// Complexity: O(|q|).
func FromQUBO(q qubo.Model) (*Model, error) {
	m := &Model{
		Vartype:   Binary,
		Linear:    make(map[graph.Node]float64),
		Quadratic: make(map[graph.Edge]float64),
	}
	for t, c := range q {
		if t.I == t.J {
			m.Linear[t.I] = c
			continue
		}
		e := graph.NewEdge(t.I, t.J)
		if _, dup := m.Quadratic[e]; dup {
			return nil, fmt.Errorf("bqm: terms (%d,%d) and (%d,%d) collide: %w", t.I, t.J, t.J, t.I, ErrInvalidShape)
		}
		m.Quadratic[e] = c
		// Interaction endpoints are variables even without a diagonal term.
		if _, ok := m.Linear[t.I]; !ok {
			m.Linear[t.I] = 0
		}
		if _, ok := m.Linear[t.J]; !ok {
			m.Linear[t.J] = 0
		}
	}

	return m, nil
}

// FromIsing repackages an Ising (h, J) model into a Spin-vartype Model.
// The offset is zero and no coefficient value changes.
//
// Errors: ErrInvalidShape on a self-coupling (J key with equal endpoints).
// Complexity: O(|h| + |J|).
func FromIsing(src ising.Model) (*Model, error) {
	m := &Model{
		Vartype:   Spin,
		Linear:    make(map[graph.Node]float64, len(src.H)),
		Quadratic: make(map[graph.Edge]float64, len(src.J)),
	}
	for n, h := range src.H {
		m.Linear[n] = h
	}
	for e, j := range src.J {
		if e.U == e.V {
			return nil, fmt.Errorf("bqm: self-coupling on %d: %w", e.U, ErrInvalidShape)
		}
		canon := graph.NewEdge(e.U, e.V)
		if _, dup := m.Quadratic[canon]; dup {
			return nil, fmt.Errorf("bqm: couplings collide on (%d,%d): %w", canon.U, canon.V, ErrInvalidShape)
		}
		m.Quadratic[canon] = j
		if _, ok := m.Linear[e.U]; !ok {
			m.Linear[e.U] = 0
		}
		if _, ok := m.Linear[e.V]; !ok {
			m.Linear[e.V] = 0
		}
	}

	return m, nil
}

// Variables returns the model's variables in ascending label order.
// Every variable carries a Linear entry (possibly 0) by construction.
func (m *Model) Variables() []graph.Node {
	out := make([]graph.Node, 0, len(m.Linear))
	for n := range m.Linear {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Energy evaluates the model for a complete sample in the vartype domain.
//
// Errors: ErrMissingVariable, ErrInvalidSample (both name the variable).
// Complexity: O(|Linear| + |Quadratic|).
func (m *Model) Energy(sample map[graph.Node]int) (float64, error) {
	e := m.Offset
	for n, bias := range m.Linear {
		v, ok := sample[n]
		if !ok {
			return 0, fmt.Errorf("bqm: variable %d: %w", n, ErrMissingVariable)
		}
		if !m.inDomain(v) {
			return 0, fmt.Errorf("bqm: variable %d value %d: %w", n, v, ErrInvalidSample)
		}
		e += bias * float64(v)
	}
	for edge, coup := range m.Quadratic {
		e += coup * float64(sample[edge.U]) * float64(sample[edge.V])
	}

	return e, nil
}

// inDomain reports whether v lies in the vartype domain.
func (m *Model) inDomain(v int) bool {
	if m.Vartype == Spin {
		return v == -1 || v == 1
	}

	return v == 0 || v == 1
}
