package http

import "errors"

var (
	ErrEmptyAuthorizationHeader   = errors.New("empty Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("invalid Authorization header")
	ErrEmptyToken                 = errors.New("empty bearer token")
	ErrUnknownTable               = errors.New("unknown syncable table")
)
