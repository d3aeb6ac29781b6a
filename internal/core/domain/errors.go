package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenInvalid = errors.New("invalid token")
var ErrNotFound = errors.New("record not found")
var ErrInvalidID = errors.New("invalid id")
var ErrValidation = errors.New("validation failed")
