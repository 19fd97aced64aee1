package harness

import (
	"bytes"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func Test_Harness_Counts(t *testing.T) {
	// given
	var buf bytes.Buffer
	h := New(&buf)
	// when
	h.AssertTrue(true, "first")
	h.AssertEqual(2, 2, "second")
	h.AssertFalse(true, "third")
	// then
	assert.Equal(t, Counts{Run: 3, Passed: 2, Failed: 1}, h.Counts())
	assert.Contains(t, buf.String(), "PASS: first")
	assert.Contains(t, buf.String(), "FAIL: third")

	h.PrintSummary()
	assert.Contains(t, buf.String(), "Tests run: 3")
	assert.Contains(t, buf.String(), "Tests failed: 1")
	assert.Contains(t, buf.String(), "Some tests failed")
}

func Test_Harness_AssertThrows(t *testing.T) {
	testCases := []struct {
		name     string
		fn       func() error
		expected bool
	}{
		{name: "matching error", fn: func() error { return errors.Wrap(errBoom, "wrapped") }, expected: true},
		{name: "no error", fn: func() error { return nil }, expected: false},
		{name: "other error", fn: func() error { return errors.New("other") }, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := New(&bytes.Buffer{})
			assert.Equal(t, tc.expected, h.AssertThrows(tc.fn, errBoom, tc.name))
			assert.Equal(t, 1, h.Counts().Run)
		})
	}
}

func Test_Harness_AssertEqual(t *testing.T) {
	h := New(&bytes.Buffer{})

	assert.True(t, h.AssertEqual(decimal.RequireFromString("400"), decimal.RequireFromString("400.00"), "decimal"))
	assert.True(t, h.AssertEqual(nil, nil, "nils"))
	assert.True(t, h.AssertEqual("a", "a", "strings"))
	assert.False(t, h.AssertEqual("a", 1, "mixed"))
	assert.False(t, h.AssertEqual(nil, "a", "nil vs value"))
}

func Test_Harness_AssertNotNil(t *testing.T) {
	h := New(&bytes.Buffer{})
	var p *int

	assert.True(t, h.AssertNotNil("x", "value"))
	assert.False(t, h.AssertNotNil(p, "typed nil"))
	assert.False(t, h.AssertNotNil(nil, "nil"))
}

func Test_Harness_Reset(t *testing.T) {
	h := New(&bytes.Buffer{})
	h.AssertTrue(false, "x")

	h.Reset()

	assert.Equal(t, Counts{}, h.Counts())
}
