package config

import (
	"strings"
	"time"
)

type HTTP struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout never returns zero so a hung endpoint cannot stall a pipeline forever.
func (h HTTP) Timeout() time.Duration {
	if h.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(h.TimeoutSeconds) * time.Second
}

type Steam struct {
	ProfileUrl string `yaml:"profile_url"`
}

// ProfileBase returns the profile url with a trailing slash.
func (s Steam) ProfileBase() string {
	base := strings.TrimSpace(s.ProfileUrl)
	if len(base) == 0 {
		base = "https://steamcommunity.com/profiles/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}
