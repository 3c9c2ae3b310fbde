package progression

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidPlayer  = errors.New("invalid player")
	ErrInvalidTask    = errors.New("invalid task")
	ErrInvalidCatalog = errors.New("invalid catalog")
)
