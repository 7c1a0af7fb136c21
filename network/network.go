// Package network loads route networks described in YAML and turns them into a
// frozen core.Graph plus a planner.DiscountTable.
//
// Document layout:
//
//	locations:
//	  - key: CDMX
//	    name: Ciudad de México
//	    coord: [577, 1694]      # optional, exactly two numbers
//	routes:
//	  - {from: CDMX, to: NYC, cost: 300}
//	discounts:
//	  CDMX: 0.3
//
// Default() returns the built-in AeroUPV network.
package network

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/planner"
)

//go:embed aeroupv.yaml
var aeroUPVDocument []byte

// ErrInvalidDocument wraps every parse, validation and build failure.
var ErrInvalidDocument = errors.New("network: invalid document")

// LocationSpec describes one location.
type LocationSpec struct {
	Key   string    `yaml:"key"`
	Name  string    `yaml:"name"`
	Coord []float64 `yaml:"coord,omitempty,flow"`
}

// RouteSpec describes one directed route.
type RouteSpec struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// Network is the decoded document.
type Network struct {
	Locations []LocationSpec     `yaml:"locations"`
	Routes    []RouteSpec        `yaml:"routes"`
	Discounts map[string]float64 `yaml:"discounts,omitempty"`
}

// Parse decodes and validates a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Network, error) {
	var n Network
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := n.validate(); err != nil {
		return nil, err
	}

	return &n, nil
}

// Options configures Load.
//
// Logger – receives an Info line per file read, Debug counts, and an Error on read failure.
type Options struct {
	Logger *slog.Logger
}

// Option represents a functional option for configuring Load.
type Option func(*Options)

// WithLogger routes Load's log lines to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options logging to slog.Default().
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// Load reads and parses the document at path.
func Load(path string, opts ...Option) (*Network, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger.With(slog.String("path", path))

	log.Info("reading network file")
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("failed to read network file", slog.String("error", err.Error()))
		return nil, fmt.Errorf("network: %w", err)
	}
	n, err := Parse(data)
	if err != nil {
		log.Error("invalid network file", slog.String("error", err.Error()))
		return nil, err
	}
	log.Debug("network loaded",
		slog.Int("locations", len(n.Locations)),
		slog.Int("routes", len(n.Routes)),
		slog.Int("discounts", len(n.Discounts)),
	)

	return n, nil
}

// Default returns the embedded AeroUPV network: seven airports, seven routes
// and discounts for CDMX, NYC and PE.
func Default() (*Network, error) { return Parse(aeroUPVDocument) }

// Marshal encodes the network back to YAML.
func (n *Network) Marshal() ([]byte, error) { return yaml.Marshal(n) }

// validate checks what the graph cannot check for us: coordinate arity and discount rates.
func (n *Network) validate() error {
	for i, loc := range n.Locations {
		if len(loc.Coord) != 0 && len(loc.Coord) != 2 {
			return fmt.Errorf("%w: location %d (%q): coord needs 2 numbers, got %d",
				ErrInvalidDocument, i, loc.Key, len(loc.Coord))
		}
	}
	if err := n.DiscountTable().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// Build registers every location, then every route, and returns the frozen graph.
// Duplicate keys and routes to undeclared locations fail with ErrInvalidDocument
// wrapping the core error.
func (n *Network) Build() (*core.Graph, error) {
	g := core.NewGraph()
	for i, loc := range n.Locations {
		var coord *core.Point
		if len(loc.Coord) == 2 {
			coord = &core.Point{X: loc.Coord[0], Y: loc.Coord[1]}
		}
		if err := g.AddLocation(loc.Key, loc.Name, coord); err != nil {
			return nil, fmt.Errorf("%w: location %d: %w", ErrInvalidDocument, i, err)
		}
	}
	for i, r := range n.Routes {
		if err := g.AddEdge(r.From, r.To, r.Cost); err != nil {
			return nil, fmt.Errorf("%w: route %d: %w", ErrInvalidDocument, i, err)
		}
	}
	g.Freeze()

	return g, nil
}

// DiscountTable returns the discounts as a planner.DiscountTable (never nil).
func (n *Network) DiscountTable() planner.DiscountTable {
	out := make(planner.DiscountTable, len(n.Discounts))
	for k, v := range n.Discounts {
		out[k] = v
	}

	return out
}

// NewPlanner builds the graph and returns a planner over it.
func (n *Network) NewPlanner(opts ...planner.Option) (*planner.Planner, error) {
	g, err := n.Build()
	if err != nil {
		return nil, err
	}

	return planner.New(g, n.DiscountTable(), opts...)
}
