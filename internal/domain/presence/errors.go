package presence

import "errors"

var (
	ErrPresenceRecordNotFound = errors.New("presence record not found")
)
