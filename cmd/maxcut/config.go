package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/maxcut/graph"
)

// edgePair is a YAML two-element sequence [u, v].
type edgePair struct {
	U, V graph.Node
}

// UnmarshalYAML decodes an edge from a two-element sequence node.
func (e *edgePair) UnmarshalYAML(value *yaml.Node) error {
	var pair []graph.Node
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("edge must be a [u, v] pair, got %d elements", len(pair))
	}
	e.U, e.V = pair[0], pair[1]

	return nil
}

// runConfig is the YAML run configuration: an optional problem graph plus
// knob overrides. Zero-valued knobs fall back to the flag values.
type runConfig struct {
	Nodes         []graph.Node `yaml:"nodes"`
	Edges         []edgePair   `yaml:"edges"`
	Gamma         float64      `yaml:"gamma"`
	Reads         int          `yaml:"reads"`
	ChainStrength float64      `yaml:"chain_strength"`
	Seed          int64        `yaml:"seed"`
}

// loadConfig reads and decodes a YAML run configuration.
func loadConfig(path string) (*runConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg runConfig
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// buildGraph assembles the problem graph from the config, or returns the
// bundled 24-node fixture when the config defines no edges.
func (c *runConfig) buildGraph() (*graph.Graph, error) {
	if c == nil || len(c.Edges) == 0 {
		return graph.CubeConnectedCycle(), nil
	}

	g := graph.New()
	for _, n := range c.Nodes {
		g.AddNode(n)
	}
	for _, e := range c.Edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}

	return g, nil
}
