package models

import "time"

// Session is a server side login session. Only the SHA-256 hash of the
// session token is stored, never the token itself.
type Session struct {
	Id        string
	UserId    UserId
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// CreatedSession carries the freshly created session together with the
// plaintext token, which exists only at creation time.
type CreatedSession struct {
	Session
	Token string
}
