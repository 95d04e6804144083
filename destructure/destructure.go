// Package destructure converts the wire protocol's untyped invoke arguments
// into the strongly-typed values a step body actually wants, reporting
// precise per-position failures instead of ever panicking on bad input.
package destructure

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/anuragh27crony/cucumberwire/wire"
)

// TypeError reports that a single wire.Arg could not be converted to the
// requested target type.
type TypeError struct {
	Target reflect.Type
	Arg    wire.Arg
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("destructure: cannot convert %v into %s", e.Arg, e.Target)
}

// SetError is the failure of a whole-tuple destructure: either the argument
// count didn't match the expected arity, or one position had the wrong type.
type SetError struct {
	// Kind distinguishes the two SetError shapes. Expected and Actual are set
	// for ArgCountMismatch; ArgIdx is set for TypeMismatch.
	Kind     SetErrorKind
	Expected int
	Actual   int
	ArgIdx   int
}

// SetErrorKind tags which SetError shape occurred.
type SetErrorKind int

const (
	// ArgCountMismatch means len(args) != arity.
	ArgCountMismatch SetErrorKind = iota
	// TypeMismatch means args[ArgIdx] didn't convert to its declared type.
	TypeMismatch
)

func (e *SetError) Error() string {
	switch e.Kind {
	case ArgCountMismatch:
		return fmt.Sprintf("Expected [%d] arguments, but found [%d] in step definition", e.Expected, e.Actual)
	default:
		return fmt.Sprintf("Argument in position [%d] did not have the correct type or was unparseable", e.ArgIdx)
	}
}

// FailMessage renders a SetError as the human-readable message the host
// reports as InvokeOutcome.Fail, per the wire protocol's destructure-failure
// contract — destructure failures never surface as a transport error.
func (e *SetError) FailMessage() string { return e.Error() }

var (
	tableType = reflect.TypeOf([][]string{})
)

// convert converts a single wire.Arg into a reflect.Value of type t,
// implementing the single-argument conversion table:
//
//	string           <- String                               (None, Table rejected)
//	[][]string       <- Table                                 (String, None rejected)
//	bool             <- None => false; "false" => false; any other String => true (Table rejected)
//	ints/floats      <- String, parsed textually               (None, Table rejected)
//	*T (optional)    <- None => nil; String => &(converted T)  (Table rejected)
func convert(arg wire.Arg, t reflect.Type) (reflect.Value, error) {
	if t.Kind() == reflect.Ptr {
		if arg.Kind == wire.KindNone {
			return reflect.Zero(t), nil
		}
		elem, err := convert(arg, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if t == tableType {
		if arg.Kind != wire.KindTable {
			return reflect.Value{}, &TypeError{Target: t, Arg: arg}
		}
		return reflect.ValueOf(arg.Table), nil
	}

	switch t.Kind() {
	case reflect.String:
		if arg.Kind != wire.KindString {
			return reflect.Value{}, &TypeError{Target: t, Arg: arg}
		}
		return reflect.ValueOf(arg.Str).Convert(t), nil

	case reflect.Bool:
		switch arg.Kind {
		case wire.KindNone:
			return reflect.ValueOf(false), nil
		case wire.KindString:
			return reflect.ValueOf(arg.Str != "false"), nil
		default:
			return reflect.Value{}, &TypeError{Target: t, Arg: arg}
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if arg.Kind != wire.KindString {
			return reflect.Value{}, &TypeError{Target: t, Arg: arg}
		}
		n, err := strconv.ParseInt(arg.Str, 10, 64)
		if err != nil {
			return reflect.Value{}, &TypeError{Target: t, Arg: arg}
		}
		v := reflect.New(t).Elem()
		v.SetInt(n)
		return v, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if arg.Kind != wire.KindString {
			return reflect.Value{}, &TypeError{Target: t, Arg: arg}
		}
		n, err := strconv.ParseUint(arg.Str, 10, 64)
		if err != nil {
			return reflect.Value{}, &TypeError{Target: t, Arg: arg}
		}
		v := reflect.New(t).Elem()
		v.SetUint(n)
		return v, nil

	case reflect.Float32, reflect.Float64:
		if arg.Kind != wire.KindString {
			return reflect.Value{}, &TypeError{Target: t, Arg: arg}
		}
		n, err := strconv.ParseFloat(arg.Str, 64)
		if err != nil {
			return reflect.Value{}, &TypeError{Target: t, Arg: arg}
		}
		v := reflect.New(t).Elem()
		v.SetFloat(n)
		return v, nil

	default:
		return reflect.Value{}, &TypeError{Target: t, Arg: arg}
	}
}

// FromWire converts a single wire.Arg into T, per the single-argument
// conversion table. T may be a pointer type to express an optional capture
// (Go's stand-in for Rust's Option<T>).
func FromWire[T any](arg wire.Arg) (T, error) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()

	v, err := convert(arg, t)
	if err != nil {
		return zero, err
	}
	return v.Interface().(T), nil
}

// FromSet converts args into one reflect.Value per t in types, failing with
// ArgCountMismatch if the lengths differ, or TypeMismatch at the first
// position that fails to convert.
func FromSet(args []wire.Arg, types []reflect.Type) ([]reflect.Value, error) {
	if len(args) != len(types) {
		return nil, &SetError{Kind: ArgCountMismatch, Expected: len(types), Actual: len(args)}
	}

	values := make([]reflect.Value, len(types))
	for i, t := range types {
		v, err := convert(args[i], t)
		if err != nil {
			return nil, &SetError{Kind: TypeMismatch, ArgIdx: i}
		}
		values[i] = v
	}
	return values, nil
}
