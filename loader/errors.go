package loader

import "errors"

var (
	ErrUnknownCity      = errors.New("no trips file configured for city")
	ErrCityFile         = errors.New("error opening trips file")
	ErrMissingColumn    = errors.New("missing required column")
	ErrInvalidTripData  = errors.New("invalid trip data")
	ErrInvalidStartTime = errors.New("invalid start time")
	ErrInvalidDuration  = errors.New("invalid duration type")
	ErrInvalidBirthYear = errors.New("invalid birth year type")
	ErrEmptyTripsFile   = errors.New("trips file has no header")
)
