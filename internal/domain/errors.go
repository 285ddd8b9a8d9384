package domain

import "errors"

// ErrNotFound is the only domain error: a referenced id does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned by login for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")
