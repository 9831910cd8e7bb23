package types

import (
	"runtime"
	"strings"

	"github.com/lgulich/dotfiles/pkg/errors"
)

// Platform is the operating system family an installer script targets
type Platform string

const (
	PlatformUbuntu Platform = "ubuntu"
	PlatformDarwin Platform = "darwin"
)

// Platforms lists every supported platform
var Platforms = []Platform{PlatformUbuntu, PlatformDarwin}

// ParsePlatform converts a user supplied name into a Platform
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformUbuntu:
		return PlatformUbuntu, nil
	case PlatformDarwin:
		return PlatformDarwin, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported platform %q (expected ubuntu or darwin)", s).
			WithDetail("platform", s)
	}
}

// DetectPlatform maps the running OS to a Platform
func DetectPlatform() (Platform, error) {
	return platformForGOOS(runtime.GOOS)
}

func platformForGOOS(goos string) (Platform, error) {
	switch goos {
	case "linux":
		return PlatformUbuntu, nil
	case "darwin":
		return PlatformDarwin, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "cannot detect platform for %s, pass --platform", goos).
			WithDetail("goos", goos)
	}
}

// ScriptPattern returns the glob installer file names must match
func (p Platform) ScriptPattern() string {
	return "install." + string(p) + ".*"
}

func (p Platform) String() string {
	return string(p)
}
