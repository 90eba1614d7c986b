package config

import (
	"github.com/adhocore/gronx"
)

type Reload struct {
	Path     string `yaml:"path"`
	Watch    *bool  `yaml:"watch"`
	Interval string `yaml:"reload_interval"`
}

func (r Reload) IsIntervalValid() bool {
	gron := gronx.New()
	return gron.IsValid(r.Interval)
}

func (r Reload) ShouldWatch() bool {
	return r.Watch == nil || *r.Watch
}

func (r Reload) Store() *SettingsStore {
	return NewSettingsStore(r.Path)
}
