package starlog_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jkeur/starswap/star"
	"github.com/jkeur/starswap/starlog"
)

func TestLogger_SwapEmitsExpectedFields(t *testing.T) {
	var buf bytes.Buffer
	l := starlog.New(slog.NewJSONHandler(&buf, nil))

	l.Swap(star.SwapRecord{I: 2, J: 5, CentreCentre: true})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "swap", rec["msg"])
	require.Equal(t, float64(2), rec["i"])
	require.Equal(t, float64(5), rec["j"])
	require.Equal(t, true, rec["centre_centre"])
}

func TestLogger_NilLoggerIsANoOp(t *testing.T) {
	var l *starlog.Logger
	require.NotPanics(t, func() {
		l.Stage(1)
		l.Swap(star.SwapRecord{})
		l.Decompose(0)
		l.Route(0, 0, 0)
	})
}

func TestLogger_FailureCarriesMatrixSnapshot(t *testing.T) {
	var buf bytes.Buffer
	l := starlog.New(slog.NewJSONHandler(&buf, nil))

	l.Failure(errors.New("boom"), [][]int{{1, 0}, {0, 1}})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "routing failed", rec["msg"])
	require.Equal(t, "boom", rec["error"])
	require.Contains(t, rec["w"], "[1, 0]")
}
