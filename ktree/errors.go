package ktree

import "errors"

// ErrInputTooShort is returned by Predict when an input vector is
// shorter than the variable count the Tree was built with.
var ErrInputTooShort = errors.New("ktree: input vector shorter than variable count")
