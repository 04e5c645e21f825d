package wifictl

import (
	"bytes"
	"fmt"
	"os/exec"
)

// HostRunner executes platform tools on the local host.
//
// Exit status is ignored on purpose: nmcli and netsh report failure in
// prose on stdout and the managers match that prose, so a non-zero exit
// still returns whatever was captured. Only failing to spawn the tool at
// all (missing binary, permissions) is an error. Output that is not
// valid UTF-8 is repaired with replacement runes rather than rejected.
type HostRunner struct{}

var _ CommandRunner = HostRunner{}

func NewHostRunner() HostRunner {
	return HostRunner{}
}

func (r HostRunner) Output(name string, arg ...string) (string, error) {
	out, err := exec.Command(name, arg...).Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return "", fmt.Errorf("running %s: %w", name, err)
		}
	}
	return string(bytes.ToValidUTF8(out, []byte("�"))), nil
}
