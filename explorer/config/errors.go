package config

import "errors"

var (
	ErrMissingCityFile  = errors.New("missing trips file for city")
	ErrUnknownCity      = errors.New("trips file configured for unknown city")
	ErrInvalidChunkSize = errors.New("chunk size must be greater than 0")
	ErrInvalidHighlight = errors.New("invalid highlight mode")
	ErrMissingExchange  = errors.New("report publisher enabled without exchange")
)
