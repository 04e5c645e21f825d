package network_profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionRendersTemplate(t *testing.T) {
	dir := t.TempDir()
	p := NewDirProvisioner(dir)

	path, err := p.Provision("HomeNet", "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "wifictl-profile-"))
	assert.True(t, strings.HasSuffix(path, ".xml"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	s := string(content)
	assert.Contains(t, s, "<name>HomeNet</name>")
	assert.Contains(t, s, "<keyMaterial>correct horse battery staple</keyMaterial>")
	assert.Contains(t, s, "<authentication>WPA2PSK</authentication>")
	assert.NotContains(t, s, "{SSID}")
	assert.NotContains(t, s, "{password}")
}

func TestProvisionSeparateFiles(t *testing.T) {
	p := NewDirProvisioner(t.TempDir())

	first, err := p.Provision("NetA", "pw-a")
	require.NoError(t, err)
	second, err := p.Provision("NetB", "pw-b")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestProvisionMissingDir(t *testing.T) {
	p := NewDirProvisioner(filepath.Join(t.TempDir(), "nope"))

	_, err := p.Provision("HomeNet", "pw")
	assert.Error(t, err)
}
