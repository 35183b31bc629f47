// Package heuristic runs ordered text-splitting strategies with fall-through.
//
// A Chain tries each Strategy in order. A strategy either reports a split
// (ok == true) or declines, in which case the next one is tried. The first
// strategy that splits wins; later strategies are never consulted.
package heuristic

// Strategy splits text into parts, or declines with ok == false.
type Strategy interface {
	Name() string
	Split(text string) (parts []string, ok bool)
}

type funcStrategy struct {
	name string
	fn   func(string) ([]string, bool)
}

func (s funcStrategy) Name() string { return s.name }

func (s funcStrategy) Split(text string) ([]string, bool) { return s.fn(text) }

// New wraps fn as a named Strategy.
func New(name string, fn func(text string) ([]string, bool)) Strategy {
	return funcStrategy{name: name, fn: fn}
}

// Result is the outcome of running a Chain.
type Result struct {
	Parts    []string
	Strategy string
	OK       bool
}

// Chain is an ordered list of strategies.
type Chain []Strategy

// Split returns the result of the first strategy that splits text.
func (c Chain) Split(text string) Result {
	for _, s := range c {
		if parts, ok := s.Split(text); ok {
			return Result{Parts: parts, Strategy: s.Name(), OK: true}
		}
	}
	return Result{}
}
