package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_KeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(zerolog.New(&buf))

	l.Info(context.Background(), "hello", "userName", "bob42")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "hello", rec["message"])
	require.Equal(t, "bob42", rec["userName"])
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(zerolog.New(&buf)).With("component", "gateway")

	l.Error(context.Background(), "boom")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "gateway", rec["component"])
}

func TestFields_DropsUnpairedValue(t *testing.T) {
	require.Len(t, fields([]any{"k", 1, "dangling"}), 2)
	require.Len(t, fields([]any{"k", 1}), 2)
}
