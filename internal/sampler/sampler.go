// Package sampler evaluates a function over evenly spaced points and renders
// the results as a bracketed, comma-separated array literal.
package sampler

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alkime/wavegen/pkg/collections"
	"gonum.org/v1/gonum/floats"
)

// Func maps an input value to an output value, or fails.
type Func[In, Out any] func(In) (Out, error)

// Formatter renders a single value as text.
type Formatter[T any] func(T) string

// Lift adapts a function that cannot fail into a Func.
func Lift[In, Out any](f func(In) Out) Func[In, Out] {
	return func(in In) (Out, error) {
		return f(in), nil
	}
}

// Linspace returns steps evenly spaced values from start to end inclusive.
// A single step yields start; the bounds may be given in either order.
func Linspace(steps int, start, end float64) ([]float64, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: steps must be non-negative, got %d", ErrInvalidArgument, steps)
	}

	switch steps {
	case 0:
		return []float64{}, nil
	case 1:
		return []float64{start}, nil
	}

	points := floats.Span(make([]float64, steps), start, end)
	points[steps-1] = end

	return points, nil
}

// Sample applies fn to each point of Linspace(steps, start, end), preserving
// order. The first failing point aborts sampling with a *ComputationError.
func Sample[Out any](fn Func[float64, Out], steps int, start, end float64) ([]Out, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: function is nil", ErrInvalidArgument)
	}

	points, err := Linspace(steps, start, end)
	if err != nil {
		return nil, err
	}

	return collections.TryApply(points, func(i int, x float64) (Out, error) {
		out, err := fn(x)
		if err != nil {
			return out, &ComputationError{Index: i, Sample: x, Err: err}
		}

		return out, nil
	})
}

// Render joins the formatted items with commas and wraps them in brackets.
func Render[T any](items []T, format Formatter[T]) string {
	return "[" + strings.Join(collections.Apply(items, format), ",") + "]"
}

// Generate samples fn, renders the results and prints them as one line on
// standard output.
func Generate[Out any](
	fn Func[float64, Out],
	format Formatter[Out],
	steps int,
	start, end float64,
) (string, []Out, error) {
	return GenerateTo(os.Stdout, fn, format, steps, start, end)
}

// GenerateTo is Generate with an explicit destination. The full result
// sequence is computed before anything is written, so a failing fn leaves w
// untouched.
func GenerateTo[Out any](
	w io.Writer,
	fn Func[float64, Out],
	format Formatter[Out],
	steps int,
	start, end float64,
) (string, []Out, error) {
	if format == nil {
		return "", nil, fmt.Errorf("%w: formatter is nil", ErrInvalidArgument)
	}

	results, err := Sample(fn, steps, start, end)
	if err != nil {
		return "", nil, err
	}

	text := Render(results, format)

	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return "", nil, fmt.Errorf("failed to write rendered samples: %w", err)
	}

	return text, results, nil
}
