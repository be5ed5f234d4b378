package settings

import (
	"time"
)

type Settings struct {
	// How long an idle interactive session is kept around
	SessionTTL time.Duration
	// How long a key press may hold a session locked
	SessionLockTTL time.Duration
	// The number of most recent lamps remembered by a session
	TapeLength int
}
