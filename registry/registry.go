// Package registry implements the Step Registry & Matcher: an ordered,
// regex-indexed catalog of step definitions that reports byte-offset capture
// metadata for any step text, plus the per-scenario active tag state.
package registry

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/anuragh27crony/cucumberwire/wire"
)

// StepID identifies a registered step definition. Ids are dense, assigned as
// max(existing)+1 starting at 0 — never reused, never reassigned to an
// existing registration.
type StepID uint32

// StepFunc is the callable a step definition invokes: it receives the
// registry it was registered in (so it can delegate to Invoke), a pointer to
// the mutable World fixture, and the positional wire arguments, and returns
// how the step fared.
type StepFunc[World any] func(reg *Registry[World], world *World, args []wire.Arg) wire.InvokeOutcome

// StepDefinition is the (regex, source location, callable) triple the
// Registry holds for each registered step, exposed for introspection.
type StepDefinition[World any] struct {
	Regex  *regexp.Regexp
	Source string
	Fn     StepFunc[World]
}

type idEntry struct {
	id     StepID
	source string
}

// Registry holds step definitions for the lifetime of a host and the tag
// state of whichever scenario is currently in progress. The three internal
// maps (regex list, regex-source → id/source, id → callable) are kept in
// lockstep on every Insert.
type Registry[World any] struct {
	regexes []*regexp.Regexp
	idIndex map[string]idEntry
	steps   map[StepID]StepFunc[World]

	// Tags holds the tags of the scenario currently in progress. It is set
	// exactly by BeginScenario and cleared exactly by EndScenario; between
	// scenarios it is nil.
	Tags []string
}

// New returns an empty Registry.
func New[World any]() *Registry[World] {
	return &Registry[World]{
		idIndex: map[string]idEntry{},
		steps:   map[StepID]StepFunc[World]{},
	}
}

// Insert appends re to the order-preserving list of step regexes, assigns it
// the next dense StepID, and stores fn under that id. Re-inserting a regex
// whose source string already exists overwrites the source-string → id
// mapping with a freshly assigned, higher id — the older id's callable is
// still reachable via Step, but FindMatch will only ever report the newest
// id for that source string, since both physical Regexp objects sharing that
// source resolve through the same map entry. This mirrors the upstream
// implementation's documented last-writer-wins behavior rather than
// rejecting the duplicate outright.
func (r *Registry[World]) Insert(source string, re *regexp.Regexp, fn StepFunc[World]) StepID {
	r.regexes = append(r.regexes, re)

	var next StepID
	found := false
	for _, e := range r.idIndex {
		if !found || e.id+1 > next {
			next = e.id + 1
			found = true
		}
	}

	r.idIndex[re.String()] = idEntry{id: next, source: source}
	r.steps[next] = fn
	return next
}

// FindMatch returns every registered regex matching text anywhere within it,
// in registration order, each with its captured groups (skipping group 0,
// the whole match) reported as byte offsets from the start of text.
func (r *Registry[World]) FindMatch(text string) []wire.MatchReport {
	reports := make([]wire.MatchReport, 0, len(r.regexes))

	for _, re := range r.regexes {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		n := re.NumSubexp()
		args := make([]wire.StepArg, 0, n)
		for g := 1; g <= n; g++ {
			start, end := loc[2*g], loc[2*g+1]
			if start < 0 {
				args = append(args, wire.StepArg{})
				continue
			}
			val := text[start:end]
			pos := uint32(start)
			args = append(args, wire.StepArg{Val: &val, Pos: &pos})
		}

		entry := r.idIndex[re.String()]
		reports = append(reports, wire.MatchReport{
			ID:     strconv.FormatUint(uint64(entry.id), 10),
			Args:   args,
			Source: entry.source,
		})
	}

	return reports
}

// Step looks up a registered callable by id.
func (r *Registry[World]) Step(id StepID) (StepFunc[World], bool) {
	fn, ok := r.steps[id]
	return fn, ok
}

// Invoke lets step code delegate to exactly one other step by its text,
// converting that match's captures into wire arguments (optionally appending
// extra, e.g. a docstring or table the caller wants to forward) before
// calling it.
func (r *Registry[World]) Invoke(text string, world *World, extra *wire.Arg) wire.InvokeOutcome {
	matches := r.FindMatch(text)

	switch len(matches) {
	case 0:
		return wire.Fail{Message: "Direct invoke matched no steps"}
	case 1:
		m := matches[0]
		args := make([]wire.Arg, 0, len(m.Args)+1)
		for _, a := range m.Args {
			args = append(args, wire.FromStepArg(a))
		}
		if extra != nil {
			args = append(args, *extra)
		}

		id64, err := strconv.ParseUint(m.ID, 10, 32)
		if err != nil {
			return wire.Fail{Message: fmt.Sprintf("invalid step id %q", m.ID)}
		}
		fn, ok := r.Step(StepID(id64))
		if !ok {
			return wire.Fail{Message: fmt.Sprintf("no step registered for id %s", m.ID)}
		}
		return fn(r, world, args)
	default:
		return wire.Fail{Message: "Direct invoke matched more than one step"}
	}
}

// BeginScenario replaces the active tag set.
func (r *Registry[World]) BeginScenario(tags []string) {
	r.Tags = tags
}

// EndScenario clears the active tag set.
func (r *Registry[World]) EndScenario() {
	r.Tags = nil
}

// Definitions returns every (regex, source, callable) triple currently held,
// for introspection and testing. Order matches registration order; a
// duplicate-source registration reassigns its slot's reported id/source to
// the newest insert per the documented Insert behavior.
func (r *Registry[World]) Definitions() []StepDefinition[World] {
	defs := make([]StepDefinition[World], 0, len(r.regexes))
	for _, re := range r.regexes {
		entry := r.idIndex[re.String()]
		fn := r.steps[entry.id]
		defs = append(defs, StepDefinition[World]{Regex: re, Source: entry.source, Fn: fn})
	}
	return defs
}
