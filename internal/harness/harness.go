// Package harness is a small assert-and-print runner used by the console
// suites. It keeps pass/fail counters and writes one line per assertion.
package harness

import (
	"fmt"
	"io"
	"reflect"

	"github.com/go-faster/errors"
)

// Counts are the totals for one suite
type Counts struct {
	Run    int
	Passed int
	Failed int
}

// Harness records assertion outcomes. It is not safe for concurrent use.
type Harness struct {
	out    io.Writer
	counts Counts
}

func New(out io.Writer) *Harness {
	return &Harness{out: out}
}

func (h *Harness) Reset() {
	h.counts = Counts{}
}

func (h *Harness) Counts() Counts {
	return h.counts
}

func (h *Harness) pass(message string) bool {
	h.counts.Run++
	h.counts.Passed++
	fmt.Fprintf(h.out, "PASS: %s\n", message)
	return true
}

func (h *Harness) fail(message string, details ...string) bool {
	h.counts.Run++
	h.counts.Failed++
	fmt.Fprintf(h.out, "FAIL: %s\n", message)
	for _, d := range details {
		fmt.Fprintf(h.out, "   %s\n", d)
	}
	return false
}

// AssertEqual passes when expected and actual are equal. Values with an
// Equal method of their own type (decimals, catalog items) are compared
// through it; everything else goes through reflect.DeepEqual.
func (h *Harness) AssertEqual(expected, actual any, message string) bool {
	if equal(expected, actual) {
		return h.pass(message)
	}
	return h.fail(message,
		fmt.Sprintf("Expected: %v", expected),
		fmt.Sprintf("Actual: %v", actual),
	)
}

func (h *Harness) AssertTrue(condition bool, message string) bool {
	if condition {
		return h.pass(message)
	}
	return h.fail(message)
}

func (h *Harness) AssertFalse(condition bool, message string) bool {
	if !condition {
		return h.pass(message)
	}
	return h.fail(message)
}

func (h *Harness) AssertNotNil(value any, message string) bool {
	if !isNil(value) {
		return h.pass(message)
	}
	return h.fail(message)
}

// AssertThrows runs fn and passes only if it returns an error matching target.
func (h *Harness) AssertThrows(fn func() error, target error, message string) bool {
	err := fn()
	switch {
	case err == nil:
		return h.fail(message,
			fmt.Sprintf("Expected error: %v", target),
			"But no error was returned",
		)
	case errors.Is(err, target):
		return h.pass(message)
	default:
		return h.fail(message,
			fmt.Sprintf("Expected error: %v", target),
			fmt.Sprintf("Actual error: %v", err),
		)
	}
}

func (h *Harness) PrintSummary() {
	fmt.Fprintln(h.out, "\n=== Test Summary ===")
	fmt.Fprintf(h.out, "Tests run: %d\n", h.counts.Run)
	fmt.Fprintf(h.out, "Tests passed: %d\n", h.counts.Passed)
	fmt.Fprintf(h.out, "Tests failed: %d\n", h.counts.Failed)

	if h.counts.Failed == 0 {
		fmt.Fprintln(h.out, "All tests passed!")
	} else {
		fmt.Fprintln(h.out, "Some tests failed. Please review the output above.")
	}
}

func equal(expected, actual any) bool {
	if expected == nil || actual == nil {
		return isNil(expected) && isNil(actual)
	}
	ev := reflect.ValueOf(expected)
	if m := ev.MethodByName("Equal"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 1 && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Bool &&
			reflect.TypeOf(actual).AssignableTo(mt.In(0)) {
			return m.Call([]reflect.Value{reflect.ValueOf(actual)})[0].Bool()
		}
	}
	return reflect.DeepEqual(expected, actual)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
