// internal/app/profile.go
package app

import "github.com/pkg/profile"

const (
	ProfileCPU = "cpu"
	ProfileMem = "mem"
)

// Stopper is returned by StartProfile; Stop flushes the profile.
type Stopper interface {
	Stop()
}

type noopStopper struct{}

func (noopStopper) Stop() {}

// StartProfile starts pkg/profile in the given mode, writing into dir.
func StartProfile(mode, dir string) Stopper {
	switch mode {
	case ProfileCPU:
		return profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook)
	case ProfileMem:
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath(dir), profile.NoShutdownHook)
	}
	return noopStopper{}
}
