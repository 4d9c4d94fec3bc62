package client

import (
	"time"

	"github.com/tomz197/bouncer/internal/game"
)

// ClientState holds per-connection presentation state.
type ClientState struct {
	Running         bool          // Client loop running
	ShuttingDown    bool          // Server announced shutdown
	delta           time.Duration // Frame delta time
	shutdownTimer   float64       // Countdown before auto-disconnect on shutdown
	isInactive      bool          // Whether the client is in inactive warning state
	prevPhase       game.Phase    // Phase drawn in the previous frame
	wasInactive     bool          // Inactivity state drawn in the previous frame
	wasShuttingDown bool          // Shutdown state drawn in the previous frame
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running:   true,
		prevPhase: game.PhaseRunning,
	}
}
