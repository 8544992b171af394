package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cpeconf/service/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestNewJSONInProduction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, "info", true)
	logger.Info("upload stored", "identifier", "device1")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	require.Equal(t, "upload stored", line["msg"])
	require.Equal(t, "device1", line["identifier"])
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, "warn", false)
	logger.Info("hidden")
	require.Empty(t, buf.String())

	logger.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, "loud", false)
	logger.Debug("hidden")
	require.Empty(t, buf.String())

	logger.Info("shown")
	require.Contains(t, buf.String(), "shown")
}
