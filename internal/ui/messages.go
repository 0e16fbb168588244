package ui

import "syncwizard/internal/services"

// probeTickMsg is the debounce timer for generation gen elapsing.
type probeTickMsg struct {
	gen uint64
}

type probeReplyMsg struct {
	gen    uint64
	path   string
	result services.DirCheckResult
	err    error
}

type installationMsg struct {
	info services.ServiceInfo
	err  error
}
