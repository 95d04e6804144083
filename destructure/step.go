package destructure

import (
	"fmt"
	"reflect"

	"github.com/anuragh27crony/cucumberwire/registry"
	"github.com/anuragh27crony/cucumberwire/wire"
)

var (
	invokeOutcomeType = reflect.TypeOf((*wire.InvokeOutcome)(nil)).Elem()
	errorType         = reflect.TypeOf((*error)(nil)).Elem()
)

// Step wraps an ordinary Go function into a registry.StepFunc[World],
// grounded on the teacher's stepDef.run/paramType reflection dispatch: fn's
// first parameter must be *World, its remaining parameters are the step's
// typed captures (converted via FromSet), and a panic raised by fn is
// recovered rather than propagated: a wire.InvokeOutcome payload is returned
// as-is, and any other payload is reported as a Fail carrying its %v text.
//
// fn's result must be one of:
//
//	(no results)               — always Success
//	error                      — nil is Success, non-nil is Fail{Message: err.Error()}
//	wire.InvokeOutcome         — returned as-is
//
// Any other signature is a registration-time programmer error and Step
// panics immediately, the same way stepregex.Compile panics on a bad
// pattern.
func Step[World any](fn any) registry.StepFunc[World] {
	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()

	if fnType.Kind() != reflect.Func {
		panic(fmt.Sprintf("destructure.Step: %T is not a function", fn))
	}
	if fnType.NumIn() < 1 || fnType.In(0) != reflect.TypeOf((*World)(nil)) {
		panic(fmt.Sprintf("destructure.Step: %s must take *%T as its first parameter", fnType, *new(World)))
	}
	switch fnType.NumOut() {
	case 0:
	case 1:
		out := fnType.Out(0)
		if out != errorType && !out.Implements(invokeOutcomeType) {
			panic(fmt.Sprintf("destructure.Step: %s must return nothing, error, or a wire.InvokeOutcome", fnType))
		}
	default:
		panic(fmt.Sprintf("destructure.Step: %s must return at most one value", fnType))
	}

	argTypes := make([]reflect.Type, fnType.NumIn()-1)
	for i := range argTypes {
		argTypes[i] = fnType.In(i + 1)
	}

	return func(_ *registry.Registry[World], world *World, args []wire.Arg) (outcome wire.InvokeOutcome) {
		defer func() {
			if r := recover(); r != nil {
				if o, ok := r.(wire.InvokeOutcome); ok {
					outcome = o
					return
				}
				outcome = wire.Fail{Message: fmt.Sprintf("%v", r)}
			}
		}()

		values, err := FromSet(args, argTypes)
		if err != nil {
			return wire.Fail{Message: err.Error()}
		}

		in := make([]reflect.Value, 0, len(values)+1)
		in = append(in, reflect.ValueOf(world))
		in = append(in, values...)

		results := fnVal.Call(in)
		if len(results) == 0 {
			return wire.Success{}
		}

		result := results[0]
		if result.Type() == errorType {
			if result.IsNil() {
				return wire.Success{}
			}
			return wire.Fail{Message: result.Interface().(error).Error()}
		}
		return result.Interface().(wire.InvokeOutcome)
	}
}
