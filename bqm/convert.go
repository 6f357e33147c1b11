package bqm

import "github.com/katalvlaran/maxcut/graph"

// Vartype changes use the substitution s = 2x − 1 (x = (s+1)/2), which
// maps {0,1} ↔ {−1,+1} while preserving the energy of every assignment.
//
// Spin → Binary, for E(s) = Σ h_i·s_i + Σ J_uv·s_u·s_v + c:
//
//	linear[i]  = 2·h_i − 2·Σ_{uv∋i} J_uv
//	quad[uv]   = 4·J_uv
//	offset     = c − Σ h_i + Σ J_uv
//
// Binary → Spin, for E(x) = Σ a_i·x_i + Σ b_uv·x_u·x_v + c:
//
//	h[i]       = a_i/2 + Σ_{uv∋i} b_uv/4
//	J[uv]      = b_uv/4
//	offset     = c + Σ a_i/2 + Σ b_uv/4
//
// Both directions are exact inverses of each other up to floating-point
// rounding of the arithmetic above.

// ToBinary returns an equivalent Binary-vartype model. A Binary model is
// returned as an independent copy.
// Complexity: O(|Linear| + |Quadratic|).
func (m *Model) ToBinary() *Model {
	if m.Vartype == Binary {
		return m.clone()
	}

	out := &Model{
		Vartype:   Binary,
		Linear:    make(map[graph.Node]float64, len(m.Linear)),
		Quadratic: make(map[graph.Edge]float64, len(m.Quadratic)),
		Offset:    m.Offset,
	}
	for n, h := range m.Linear {
		out.Linear[n] = 2 * h
		out.Offset -= h
	}
	for e, j := range m.Quadratic {
		out.Quadratic[e] = 4 * j
		out.Linear[e.U] -= 2 * j
		out.Linear[e.V] -= 2 * j
		out.Offset += j
	}

	return out
}

// ToSpin returns an equivalent Spin-vartype model. A Spin model is
// returned as an independent copy.
// Complexity: O(|Linear| + |Quadratic|).
func (m *Model) ToSpin() *Model {
	if m.Vartype == Spin {
		return m.clone()
	}

	out := &Model{
		Vartype:   Spin,
		Linear:    make(map[graph.Node]float64, len(m.Linear)),
		Quadratic: make(map[graph.Edge]float64, len(m.Quadratic)),
		Offset:    m.Offset,
	}
	for n, a := range m.Linear {
		out.Linear[n] = a / 2
		out.Offset += a / 2
	}
	for e, b := range m.Quadratic {
		out.Quadratic[e] = b / 4
		out.Linear[e.U] += b / 4
		out.Linear[e.V] += b / 4
		out.Offset += b / 4
	}

	return out
}

// clone returns a deep copy of the model.
func (m *Model) clone() *Model {
	out := &Model{
		Vartype:   m.Vartype,
		Linear:    make(map[graph.Node]float64, len(m.Linear)),
		Quadratic: make(map[graph.Edge]float64, len(m.Quadratic)),
		Offset:    m.Offset,
	}
	for n, v := range m.Linear {
		out.Linear[n] = v
	}
	for e, v := range m.Quadratic {
		out.Quadratic[e] = v
	}

	return out
}
