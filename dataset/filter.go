package dataset

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled episode predicate such as
//
//	episode >= 10 && socialMediaShares > 200
//
// Expressions see every Episode field under its document name plus the
// derived newShare and returningShare. A Filter is safe for concurrent use.
type Filter struct {
	source  string
	program *vm.Program
}

var (
	filterMu    sync.Mutex
	filterCache = map[string]*Filter{}
)

// CompileFilter compiles a boolean episode expression. Compiled filters
// are cached by source text.
func CompileFilter(source string) (*Filter, error) {
	filterMu.Lock()
	defer filterMu.Unlock()

	if f, ok := filterCache[source]; ok {
		return f, nil
	}
	program, err := expr.Compile(source, expr.Env(Episode{}.env()), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("dataset: compile filter %q: %w", source, err)
	}
	f := &Filter{source: source, program: program}
	filterCache[source] = f
	return f, nil
}

// String returns the expression source.
func (f *Filter) String() string { return f.source }

// Match reports whether the episode satisfies the filter.
func (f *Filter) Match(e Episode) (bool, error) {
	out, err := expr.Run(f.program, e.env())
	if err != nil {
		return false, fmt.Errorf("dataset: filter %q on episode %d: %w", f.source, e.Episode, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the episodes matching the filter, in order.
func (f *Filter) Apply(eps []Episode) ([]Episode, error) {
	var out []Episode
	for _, e := range eps {
		ok, err := f.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// Where returns a copy of the dataset holding only the episodes for which
// source evaluates to true. AverageCompletionRate keeps the value of the
// full dataset.
func (d *Dataset) Where(source string) (*Dataset, error) {
	f, err := CompileFilter(source)
	if err != nil {
		return nil, err
	}
	eps, err := f.Apply(d.Episodes)
	if err != nil {
		return nil, err
	}
	out := *d
	out.Episodes = eps
	return &out, nil
}
