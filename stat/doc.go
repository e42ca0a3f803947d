// Package stat computes frequency tables and order statistics of a
// sequence of observations.
//
// Both entry points, BuildFrequencyTable and Calculate, are pure: the
// input slice is never modified and every call returns freshly allocated
// results. Invalid input is reported as an error wrapping ErrInvalidInput.
package stat

import "errors"

// ErrInvalidInput is returned (wrapped) for empty observation sequences,
// non-positive class widths and non-finite observations.
var ErrInvalidInput = errors.New("invalid input")
