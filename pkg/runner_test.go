package wifictl

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRunnerNonZeroExit(t *testing.T) {
	out, err := NewHostRunner().Output("sh", "-c", "echo refused; exit 3")

	// the tool ran and spoke, a non-zero exit is a result, not an error
	require.NoError(t, err)
	assert.Contains(t, out, "refused")
}

func TestHostRunnerMissingBinary(t *testing.T) {
	_, err := NewHostRunner().Output("wifictl-no-such-tool-on-any-host")
	assert.Error(t, err)
}

func TestHostRunnerRepairsInvalidUTF8(t *testing.T) {
	out, err := NewHostRunner().Output("sh", "-c", `printf 'ok\377'`)

	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.True(t, utf8.ValidString(out))
}
