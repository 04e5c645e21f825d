package wifictl

import "errors"

var (
	// ErrUnsupportedPlatform is returned by the manager factory when the
	// host OS has no backend.
	ErrUnsupportedPlatform = errors.New("no wifi backend for this platform")

	// ErrRadioOff is returned by Connect when the radio kill switch is on.
	// No connect command is issued in that case.
	ErrRadioOff = errors.New("wifi radio is disabled")

	// ErrAddProfile is returned on Windows when the WLAN profile could not
	// be written or registered before connecting.
	ErrAddProfile = errors.New("failed to add network profile")

	// ErrNoInterface is returned when no usable wireless interface was
	// configured or discovered.
	ErrNoInterface = errors.New("no wireless interface found")
)
