package models

import "time"

// WakeConfig holds Wake-on-LAN configuration.
type WakeConfig struct {
	MACAddress   string
	BroadcastIP  string
	WaitHost     string        // host to ping until the target machine is up; empty disables waiting
	WaitTimeout  time.Duration // max time to wait for the target
	PollInterval time.Duration // how often to ping while waiting
	Ping         PingSettings  // settings for the wait pings
}

// WakeResult holds the result of a Wake-on-LAN operation.
type WakeResult struct {
	PacketSent   bool
	TargetReady  bool
	WaitDuration time.Duration
	Error        error
}
