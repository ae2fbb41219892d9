package filter

import "errors"

var (
	ErrUnknownCity  = errors.New("unknown city")
	ErrUnknownMonth = errors.New("unknown month")
	ErrUnknownDay   = errors.New("unknown day")
)
