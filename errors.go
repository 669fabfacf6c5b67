package locl

import "errors"

var (
	ErrNoResources        = errors.New("locl: resources cannot be empty")
	ErrNoFallbackLanguage = errors.New("locl: fallback language cannot be empty")
	ErrNilFormatter       = errors.New("locl: formatter cannot be nil")
	ErrNilPluralRule      = errors.New("locl: plural rule cannot be nil")
	ErrInvalidFile        = errors.New("locl: invalid translation file")
)
