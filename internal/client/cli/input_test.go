package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineBeforeEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(reader, "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("19.99\nnope\n"))

	v, err := GetFloat(reader, "Price", &out)
	require.NoError(t, err)
	require.InDelta(t, 19.99, v, 1e-9)

	_, err = GetFloat(reader, "Price", &out)
	require.Error(t, err)
}
