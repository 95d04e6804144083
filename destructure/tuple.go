package destructure

import (
	"reflect"

	"github.com/anuragh27crony/cucumberwire/wire"
)

func typeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(&zero).Elem()
}

// Tuple1 destructures args into a single typed value. It exists alongside
// FromWire so step registration can always go through the *Set family
// uniformly regardless of arity.
func Tuple1[A any](args []wire.Arg) (a A, err error) {
	values, err := FromSet(args, []reflect.Type{typeOf[A]()})
	if err != nil {
		return a, err
	}
	return values[0].Interface().(A), nil
}

// Tuple2 destructures args into two typed values.
func Tuple2[A, B any](args []wire.Arg) (a A, b B, err error) {
	values, err := FromSet(args, []reflect.Type{typeOf[A](), typeOf[B]()})
	if err != nil {
		return a, b, err
	}
	return values[0].Interface().(A), values[1].Interface().(B), nil
}

// Tuple3 destructures args into three typed values.
func Tuple3[A, B, C any](args []wire.Arg) (a A, b B, c C, err error) {
	values, err := FromSet(args, []reflect.Type{typeOf[A](), typeOf[B](), typeOf[C]()})
	if err != nil {
		return a, b, c, err
	}
	return values[0].Interface().(A), values[1].Interface().(B), values[2].Interface().(C), nil
}

// Tuple4 destructures args into four typed values.
func Tuple4[A, B, C, D any](args []wire.Arg) (a A, b B, c C, d D, err error) {
	values, err := FromSet(args, []reflect.Type{typeOf[A](), typeOf[B](), typeOf[C](), typeOf[D]()})
	if err != nil {
		return a, b, c, d, err
	}
	return values[0].Interface().(A), values[1].Interface().(B), values[2].Interface().(C),
		values[3].Interface().(D), nil
}

// Tuple5 destructures args into five typed values.
func Tuple5[A, B, C, D, E any](args []wire.Arg) (a A, b B, c C, d D, e E, err error) {
	values, err := FromSet(args, []reflect.Type{typeOf[A](), typeOf[B](), typeOf[C](), typeOf[D](), typeOf[E]()})
	if err != nil {
		return a, b, c, d, e, err
	}
	return values[0].Interface().(A), values[1].Interface().(B), values[2].Interface().(C),
		values[3].Interface().(D), values[4].Interface().(E), nil
}

// Tuple6 destructures args into six typed values.
func Tuple6[A, B, C, D, E, F any](args []wire.Arg) (a A, b B, c C, d D, e E, f F, err error) {
	values, err := FromSet(args, []reflect.Type{
		typeOf[A](), typeOf[B](), typeOf[C](), typeOf[D](), typeOf[E](), typeOf[F](),
	})
	if err != nil {
		return a, b, c, d, e, f, err
	}
	return values[0].Interface().(A), values[1].Interface().(B), values[2].Interface().(C),
		values[3].Interface().(D), values[4].Interface().(E), values[5].Interface().(F), nil
}

// Tuple7 destructures args into seven typed values.
func Tuple7[A, B, C, D, E, F, G any](args []wire.Arg) (a A, b B, c C, d D, e E, f F, g G, err error) {
	values, err := FromSet(args, []reflect.Type{
		typeOf[A](), typeOf[B](), typeOf[C](), typeOf[D](), typeOf[E](), typeOf[F](), typeOf[G](),
	})
	if err != nil {
		return a, b, c, d, e, f, g, err
	}
	return values[0].Interface().(A), values[1].Interface().(B), values[2].Interface().(C),
		values[3].Interface().(D), values[4].Interface().(E), values[5].Interface().(F),
		values[6].Interface().(G), nil
}

// Tuple8 destructures args into eight typed values.
func Tuple8[A, B, C, D, E, F, G, H any](args []wire.Arg) (a A, b B, c C, d D, e E, f F, g G, h H, err error) {
	values, err := FromSet(args, []reflect.Type{
		typeOf[A](), typeOf[B](), typeOf[C](), typeOf[D](), typeOf[E](), typeOf[F](), typeOf[G](), typeOf[H](),
	})
	if err != nil {
		return a, b, c, d, e, f, g, h, err
	}
	return values[0].Interface().(A), values[1].Interface().(B), values[2].Interface().(C),
		values[3].Interface().(D), values[4].Interface().(E), values[5].Interface().(F),
		values[6].Interface().(G), values[7].Interface().(H), nil
}
