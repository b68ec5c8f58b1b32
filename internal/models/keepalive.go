// Package models contains the data structures used throughout wifi-keepalive.
package models

import "time"

// KeepAliveConfig holds the complete configuration for a keep-alive run.
type KeepAliveConfig struct {
	Target   string        // host or IP to ping
	Interval time.Duration // pause between probes
	Ping     PingSettings
	Platform Platform
}

// PingSettings controls a single probe invocation.
type PingSettings struct {
	Count   int           // echo requests per probe
	Timeout time.Duration // max wait for a reply
}

// ProbeResult holds the outcome of a single reachability probe.
type ProbeResult struct {
	Reachable bool
	Latency   time.Duration // zero when the probe failed
	CheckedAt time.Time
}
