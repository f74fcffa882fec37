package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/propfilter/internal/propset"
	"github.com/roach88/propfilter/internal/units"
)

// MustParseSet parses value-set text against units.Standard(), failing the
// test on error.
func MustParseSet(t testing.TB, text string) propset.Set {
	t.Helper()
	s, err := propset.Parse(text, units.Standard())
	require.NoError(t, err, "parse set %q", text)
	return s
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
