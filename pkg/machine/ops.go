package machine

import (
	"math"

	"github.com/olimci/fuhen/pkg/lazy"
	"github.com/olimci/fuhen/pkg/stack"
)

// Word transforms a stack into its successor. Words never mutate the
// input; failed words leave the machine's stack untouched.
type Word func(s stack.Stack[float64]) (stack.Stack[float64], error)

var builtins = lazy.New(buildWords)

func buildWords() map[string]Word {
	return map[string]Word{
		"+":   binary(func(a, b float64) (float64, error) { return a + b, nil }),
		"-":   binary(func(a, b float64) (float64, error) { return a - b, nil }),
		"*":   binary(func(a, b float64) (float64, error) { return a * b, nil }),
		"min": binary(func(a, b float64) (float64, error) { return math.Min(a, b), nil }),
		"max": binary(func(a, b float64) (float64, error) { return math.Max(a, b), nil }),
		"pow": binary(func(a, b float64) (float64, error) { return math.Pow(a, b), nil }),
		"/": binary(func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, ErrDivideByZero
			}
			return a / b, nil
		}),
		"mod": binary(func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, ErrDivideByZero
			}
			return math.Mod(a, b), nil
		}),

		"neg": unary(func(a float64) float64 { return -a }),
		"abs": unary(math.Abs),

		"dup": func(s stack.Stack[float64]) (stack.Stack[float64], error) {
			v, ok := s.TryPeek()
			if !ok {
				return s, ErrUnderflow
			}
			return s.Push(v), nil
		},
		"drop": func(s stack.Stack[float64]) (stack.Stack[float64], error) {
			rest, _, ok := s.TryPop()
			if !ok {
				return s, ErrUnderflow
			}
			return rest, nil
		},
		// ( a b -- b a )
		"swap": shuffle(2, func(v []float64) []float64 { return []float64{v[1], v[0]} }),
		// ( a b -- a b a )
		"over": shuffle(2, func(v []float64) []float64 { return []float64{v[0], v[1], v[0]} }),
		// ( a b c -- b c a )
		"rot": shuffle(3, func(v []float64) []float64 { return []float64{v[1], v[2], v[0]} }),
		// ( a b -- b )
		"nip": shuffle(2, func(v []float64) []float64 { return []float64{v[1]} }),
		// ( a b -- b a b )
		"tuck": shuffle(2, func(v []float64) []float64 { return []float64{v[1], v[0], v[1]} }),

		"clear": func(s stack.Stack[float64]) (stack.Stack[float64], error) {
			return s.Clear(), nil
		},
		"rev": func(s stack.Stack[float64]) (stack.Stack[float64], error) {
			return s.Reverse(), nil
		},
		"depth": func(s stack.Stack[float64]) (stack.Stack[float64], error) {
			return s.Push(float64(s.Len())), nil
		},
		"sum": fold(0, func(acc, v float64) float64 { return acc + v }),
		"prod": fold(1, func(acc, v float64) float64 { return acc * v }),
	}
}

func unary(f func(a float64) float64) Word {
	return func(s stack.Stack[float64]) (stack.Stack[float64], error) {
		rest, a, ok := s.TryPop()
		if !ok {
			return s, ErrUnderflow
		}
		return rest.Push(f(a)), nil
	}
}

// binary pops b then a and pushes f(a, b), so "3 4 -" leaves -1.
func binary(f func(a, b float64) (float64, error)) Word {
	return func(s stack.Stack[float64]) (stack.Stack[float64], error) {
		rest, b, ok := s.TryPop()
		if !ok {
			return s, ErrUnderflow
		}
		rest, a, ok := rest.TryPop()
		if !ok {
			return s, ErrUnderflow
		}
		v, err := f(a, b)
		if err != nil {
			return s, err
		}
		return rest.Push(v), nil
	}
}

// shuffle pops n values (v[n-1] is the top) and pushes out in order,
// out[len-1] ending up on top.
func shuffle(n int, rearrange func(v []float64) []float64) Word {
	return func(s stack.Stack[float64]) (stack.Stack[float64], error) {
		popped := make([]float64, n)
		rest := s
		for i := n - 1; i >= 0; i-- {
			var ok bool
			rest, popped[i], ok = rest.TryPop()
			if !ok {
				return s, ErrUnderflow
			}
		}
		for _, v := range rearrange(popped) {
			rest = rest.Push(v)
		}
		return rest, nil
	}
}

// fold replaces the whole stack with a single accumulated value.
func fold(init float64, f func(acc, v float64) float64) Word {
	return func(s stack.Stack[float64]) (stack.Stack[float64], error) {
		acc := init
		for v := range s.All() {
			acc = f(acc, v)
		}
		return stack.New(acc), nil
	}
}
