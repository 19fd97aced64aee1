package demo

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Catalog(t *testing.T) {
	items, errs := Catalog()

	require.Empty(t, errs)
	assert.Len(t, items, 6)
}

func Test_Run(t *testing.T) {
	// given
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// when
	totals := Run(&buf, logger)
	// then
	out := buf.String()
	assert.Equal(t, "1704.94", totals.Value.StringFixed(2))
	assert.Contains(t, out, "My Awesome Store")
	assert.Contains(t, out, "Total Cart Value: $1704.94")
	assert.Contains(t, out, "Physical Products: 3")
	assert.Contains(t, out, "Digital Products: 3")
	assert.Equal(t, 6, strings.Count(out, "--- Shopping Cart Item"))
	assert.Equal(t, 3, strings.Count(out, "Download Instructions:"))
}
