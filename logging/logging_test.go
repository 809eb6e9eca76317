// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/tabview/errs"
	"github.com/katalvlaran/tabview/logging"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)
	l.Debug("sub-view", "rows", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "sub-view", rec["msg"])
	require.Equal(t, 2.0, rec["rows"])
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Level: "warn", Output: &buf})
	require.NoError(t, err)
	l.Info("hidden")
	require.Empty(t, buf.String())
	l.Warn("shown")
	require.Contains(t, buf.String(), "msg=shown")
}

func TestBadConfig(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "loud"})
	require.ErrorIs(t, err, errs.ErrValue)
	_, err = logging.New(logging.Config{Format: "xml"})
	require.ErrorIs(t, err, errs.ErrValue)

	lvl, err := logging.ParseLevel("WARNING")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, lvl)
	require.NotNil(t, logging.OrDiscard(nil))
}
