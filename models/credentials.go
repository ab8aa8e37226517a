package models

// Credentials identify the caller for the duration of a request, resolved
// from the session cookie by the authentication middleware.
type Credentials struct {
	UserId    UserId
	Username  string
	SessionId string
}
