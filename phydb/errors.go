package phydb

import "errors"

// ErrEmptyInputPath indicates LoadFixture was called with an empty path.
var ErrEmptyInputPath = errors.New("phydb: fixture path is empty")
