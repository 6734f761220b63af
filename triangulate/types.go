// SPDX-License-Identifier: MIT
// Package: mintri/triangulate
//
// types.go - heuristics, orderings, options and sentinel errors.
//
// Policy:
//   - Options follow the functional style; invalid values are recorded and
//     surfaced as ErrOptionViolation by New / MCSM / LBTriang.
//   - Nil hooks are ignored (defaults stay in place).

package triangulate

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mintri/graph"
)

// Sentinel errors for triangulation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("triangulate: graph is nil")

	// ErrUnknownHeuristic is returned for an unrecognized Heuristic value or name.
	ErrUnknownHeuristic = errors.New("triangulate: unknown heuristic")

	// ErrUnknownOrdering is returned for an unrecognized Ordering value.
	ErrUnknownOrdering = errors.New("triangulate: unknown ordering")

	// ErrNoCandidates is returned by the ordering selectors for an empty candidate set.
	ErrNoCandidates = errors.New("triangulate: empty candidate set")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("triangulate: invalid option supplied")

	// ErrHook wraps an error returned by an OnFill hook.
	ErrHook = errors.New("triangulate: hook aborted triangulation")
)

// Heuristic selects the triangulation engine.
type Heuristic int

const (
	// HeuristicMCSM computes a minimal triangulation with MCS-M.
	HeuristicMCSM Heuristic = iota
	// HeuristicLBTriang runs LB-Triang in natural (ascending id) order.
	HeuristicLBTriang
	// HeuristicMinDegreeLBTriang runs LB-Triang choosing min-degree vertices first.
	HeuristicMinDegreeLBTriang
	// HeuristicMinFillLBTriang runs LB-Triang choosing min-fill vertices first.
	HeuristicMinFillLBTriang
)

var heuristicNames = [...]string{
	HeuristicMCSM:              "mcs-m",
	HeuristicLBTriang:          "lb-triang",
	HeuristicMinDegreeLBTriang: "min-degree-lb-triang",
	HeuristicMinFillLBTriang:   "min-fill-lb-triang",
}

// Heuristics returns every supported heuristic in declaration order.
func Heuristics() []Heuristic {
	return []Heuristic{HeuristicMCSM, HeuristicLBTriang, HeuristicMinDegreeLBTriang, HeuristicMinFillLBTriang}
}

// String returns the canonical name, e.g. "mcs-m".
func (h Heuristic) String() string {
	if !h.valid() {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}

	return heuristicNames[h]
}

func (h Heuristic) valid() bool { return h >= HeuristicMCSM && h <= HeuristicMinFillLBTriang }

// ordering maps an LB-Triang heuristic to its vertex ordering policy.
func (h Heuristic) ordering() Ordering {
	switch h {
	case HeuristicMinDegreeLBTriang:
		return OrderMinDegree
	case HeuristicMinFillLBTriang:
		return OrderMinFill
	default:
		return OrderNatural
	}
}

// ParseHeuristic resolves a heuristic name. Matching ignores case and treats
// '_' as '-', so both "mcs-m" and "MCS_M" are accepted.
func ParseHeuristic(name string) (Heuristic, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, h := range Heuristics() {
		if heuristicNames[h] == norm {
			return h, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// Ordering is the vertex selection policy of the LB-Triang engine.
type Ordering int

const (
	// OrderNatural processes vertices 0..n-1.
	OrderNatural Ordering = iota
	// OrderMinDegree picks the unhandled vertex of smallest degree in the working graph.
	OrderMinDegree
	// OrderMinFill picks the unhandled vertex of smallest fill cost in the working graph.
	OrderMinFill
)

// String returns a short name for the ordering.
func (o Ordering) String() string {
	switch o {
	case OrderNatural:
		return "natural"
	case OrderMinDegree:
		return "min-degree"
	case OrderMinFill:
		return "min-fill"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Option configures triangulation via functional arguments.
type Option func(*Options)

// Options holds the logger and hooks used by the engines.
type Options struct {
	// Logger receives Debug records for run start, per-vertex fill and completion.
	Logger *log.Logger

	// OnVisit is called when an engine processes a vertex.
	OnVisit func(v graph.Node)

	// OnFill is called for each edge newly added to the result. A non-nil
	// error aborts the run; the error is wrapped with ErrHook.
	OnFill func(e graph.Edge) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:  log.New(io.Discard),
		OnVisit: func(graph.Node) {},
		OnFill:  func(graph.Edge) error { return nil },
	}
}

// WithLogger routes Debug records to l. A nil logger is an option violation.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithOnVisit registers a callback run for each processed vertex.
func WithOnVisit(fn func(v graph.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnFill registers a callback run for each added edge; returning an
// error stops the triangulation.
func WithOnFill(fn func(e graph.Edge) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFill = fn
		}
	}
}

// resolveOptions applies opts over the defaults.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
