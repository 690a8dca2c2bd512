package kat

import "errors"

// ErrRunNotFound is returned when no stored run has the requested ID.
var ErrRunNotFound = errors.New("kat run not found")
