package config

import "time"

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Max render resolution in terminal cells. Larger terminals get a centered
// render area with a border around it.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 5.0 // Seconds to show shutdown message before auto-disconnect
)

// Leaderboard
const (
	LeaderboardSize   = 5
	MaxUsernameLength = 16 // Maximum display length for player usernames
)
