package domain

import "errors"

// ErrNotFound reports a lookup for an item id the store does not hold.
var ErrNotFound = errors.New("not found")
