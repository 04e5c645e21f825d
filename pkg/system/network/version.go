package network

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver"
	wifictl "github.com/dogeorg/wifictl/pkg"
)

// nmcli grew the `d wifi connect ... ifname` syntax in 0.9.10
const minNmcliVersion = ">= 0.9.10"

// CheckNmcliVersion fails when nmcli is missing or provably too old to
// understand the vectors we issue. A version we cannot make sense of
// only warns, vendor builds mangle the banner.
func CheckNmcliVersion(runner wifictl.CommandRunner) error {
	out, err := runner.Output("nmcli", "--version")
	if err != nil {
		return fmt.Errorf("nmcli is not available: %w", err)
	}

	raw := parseNmcliVersion(out)
	if raw == "" {
		logger.Warnf("could not find an nmcli version in %q", strings.TrimSpace(out))
		return nil
	}

	v, err := semver.NewVersion(raw)
	if err != nil {
		logger.Warnf("could not parse nmcli version %q: %v", raw, err)
		return nil
	}

	constraint, err := semver.NewConstraint(minNmcliVersion)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("nmcli %s is too old, need %s", raw, minNmcliVersion)
	}
	return nil
}

// parseNmcliVersion pulls the trailing token from a banner like
// "nmcli tool, version 1.42.4".
func parseNmcliVersion(out string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
