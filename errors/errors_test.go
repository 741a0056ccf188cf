package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCodeDescription(t *testing.T) {
	require.Equal(t, "attribute error", E3012.Description())
	require.Equal(t, "stop iteration", E3014.Description())
	require.Equal(t, "runtime", E3015.Category())
	require.Equal(t, "unknown error", ErrorCode("E9999").Description())
}

func TestNewBootstrapErrorSingle(t *testing.T) {
	err := NewBootstrapError(errors.New("missing int dunder table"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "bootstrap error")
	require.Contains(t, err.Error(), "missing int dunder table")
	require.True(t, err.IsFatal())
}

func TestNewBootstrapErrorAggregatesMultiple(t *testing.T) {
	err := NewBootstrapError(
		errors.New("missing int dunder table"),
		errors.New("missing base exception class"),
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing int dunder table")
	require.Contains(t, err.Error(), "missing base exception class")
}

func TestNewBootstrapErrorNilWhenNoFailures(t *testing.T) {
	err := NewBootstrapError()
	require.Nil(t, err)
}
