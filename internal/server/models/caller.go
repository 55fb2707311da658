package models

// Caller is the resolved principal behind a request. The zero value is the
// anonymous caller.
type Caller struct {
	UserID        int64
	Authenticated bool
}

// Anonymous is the caller used when no credential resolves.
var Anonymous = Caller{}
