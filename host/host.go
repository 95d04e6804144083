// Package host implements the Step Host (World Runner): it owns a Registry
// and the opaque World value, translates wire.Request values into
// wire.Response values per the dispatch table, and catches and translates a
// step callable's panic on the invoke path rather than allowing it to crash
// the server goroutine. Steps registered through Given/When/Then are wrapped
// by destructure.Step, which recovers their panics with the same translation
// before they reach the host.
package host

import (
	"fmt"
	"strconv"

	"github.com/anuragh27crony/cucumberwire/destructure"
	"github.com/anuragh27crony/cucumberwire/registry"
	"github.com/anuragh27crony/cucumberwire/stepregex"
	"github.com/anuragh27crony/cucumberwire/wire"
)

// Host owns a Registry and a pointer to the World fixture threaded mutably
// through every step invocation, grounded on the Rust crate's
// runner.WorldRunner<World>.
type Host[World any] struct {
	Registry *registry.Registry[World]
	World    *World

	builder *stepregex.Builder
}

// New returns a Host wrapping an empty Registry and the given World.
func New[World any](world *World) *Host[World] {
	return &Host[World]{
		Registry: registry.New[World](),
		World:    world,
		builder:  stepregex.NewBuilder(),
	}
}

// Given registers a step. file and line are recorded as part of the
// reported source string, matching the registration surface's
// (file, line, regex, callable) contract; the Given/When/Then labels carry
// no matching semantics of their own.
func (h *Host[World]) Given(file string, line int, pattern string, fn any) {
	h.register(file, line, pattern, fn)
}

// When registers a step. See Given.
func (h *Host[World]) When(file string, line int, pattern string, fn any) {
	h.register(file, line, pattern, fn)
}

// Then registers a step. See Given.
func (h *Host[World]) Then(file string, line int, pattern string, fn any) {
	h.register(file, line, pattern, fn)
}

func (h *Host[World]) register(file string, line int, pattern string, fn any) {
	source := fmt.Sprintf("%s:%d", file, line)
	stepFn := destructure.Step[World](fn)
	for _, re := range h.builder.CompileAll(pattern) {
		h.Registry.Insert(source, re, stepFn)
	}
}

// Handle dispatches one decoded wire.Request and returns the wire.Response
// to write back, per spec.md §4.E's table.
func (h *Host[World]) Handle(req wire.Request) wire.Response {
	switch r := req.(type) {
	case wire.BeginScenarioRequest:
		h.Registry.BeginScenario(r.Tags)
		return wire.Success{}

	case wire.EndScenarioRequest:
		h.Registry.EndScenario()
		return wire.Success{}

	case wire.StepMatchesRequest:
		matches := h.Registry.FindMatch(r.NameToMatch)
		return wire.WithPayload{Payload: matches}

	case wire.InvokeRequest:
		return h.invoke(r)

	case wire.SnippetTextRequest:
		return wire.WithPayload{Payload: h.snippetText(r)}

	default:
		return wire.Fail{Message: fmt.Sprintf("host: unhandled request type %T", req)}
	}
}

// invoke looks up the step by id, then calls it under a recover that
// implements the three-way panic-payload translation from spec.md §4.E:
// an InvokeOutcome payload is used verbatim, a string or error payload is
// wrapped as Fail, and anything else is rendered with fmt.Sprintf("%v", v).
func (h *Host[World]) invoke(r wire.InvokeRequest) (outcome wire.Response) {
	id64, err := strconv.ParseUint(r.ID, 10, 32)
	if err != nil {
		return wire.Fail{Message: fmt.Sprintf("invalid step id %q", r.ID)}
	}

	fn, ok := h.Registry.Step(registry.StepID(id64))
	if !ok {
		return wire.Fail{Message: fmt.Sprintf("no step registered for id %s", r.ID)}
	}

	defer func() {
		if rec := recover(); rec != nil {
			outcome = translatePanic(rec)
		}
	}()

	return fn(h.Registry, h.World, r.Args)
}

func translatePanic(rec any) wire.Response {
	switch v := rec.(type) {
	case wire.InvokeOutcome:
		return v
	case error:
		return wire.Fail{Message: v.Error()}
	case string:
		return wire.Fail{Message: v}
	default:
		return wire.Fail{Message: fmt.Sprintf("%v", v)}
	}
}

// snippetText produces a suggested Go registration for an undefined step,
// grounded on runner/src/lib.rs's SnippetText template: a Given/When/Then
// call wrapping a pending body, interpolating the keyword and step name.
func (h *Host[World]) snippetText(r wire.SnippetTextRequest) string {
	return fmt.Sprintf(
		"%s(file, line, `^%s$`, func(w *World) wire.InvokeOutcome {\n\treturn wire.Pending{Message: \"TODO\"}\n})",
		r.StepKeyword, r.StepName,
	)
}
