package config

import "errors"

// ErrInvalidLogFormat is returned by Load when log.format is set to
// anything other than "json" or "console".
var ErrInvalidLogFormat = errors.New("config: log.format must be \"json\" or \"console\"")
