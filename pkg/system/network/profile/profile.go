package network_profile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	wifictl "github.com/dogeorg/wifictl/pkg"
)

// WPA2PSK/AES profile accepted by `netsh wlan add profile`
//
//go:embed profile.xml
var profileTemplate string

var _ wifictl.ProfileProvisioner = TempFileProvisioner{}

// TempFileProvisioner renders the WLAN profile template into a file
// under dir. The caller is expected to remove the file once netsh has
// registered it, the key material is in there unprotected.
type TempFileProvisioner struct {
	dir string
}

func NewTempFileProvisioner() TempFileProvisioner {
	return TempFileProvisioner{dir: os.TempDir()}
}

// NewDirProvisioner keeps profiles under a caller-chosen directory,
// which tests use to avoid touching the real temp dir.
func NewDirProvisioner(dir string) TempFileProvisioner {
	return TempFileProvisioner{dir: dir}
}

func (t TempFileProvisioner) Provision(ssid, password string) (string, error) {
	content := strings.ReplaceAll(profileTemplate, "{SSID}", ssid)
	content = strings.ReplaceAll(content, "{password}", password)

	f, err := os.CreateTemp(t.dir, "wifictl-profile-*.xml")
	if err != nil {
		return "", fmt.Errorf("creating profile file: %w", err)
	}
	path := f.Name()

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing profile %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing profile %s: %w", filepath.Base(path), err)
	}
	return path, nil
}
