package communication

import "errors"

var (
	ErrMarshallingReport = errors.New("unexpected error marshalling session report")
	ErrPublishingReport  = errors.New("error publishing session report")
)
