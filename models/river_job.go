package models

// SessionPurgeJobArgs is the periodic job deleting expired sessions.
type SessionPurgeJobArgs struct{}

func (SessionPurgeJobArgs) Kind() string {
	return "session_purge"
}
