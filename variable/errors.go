package variable

import "errors"

// ErrInvalidDomain indicates that a Variable's range has lo > hi.
var ErrInvalidDomain = errors.New("variable: invalid domain, lo must be <= hi")
