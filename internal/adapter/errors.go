package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected http status")

	ErrTransport      = errors.New("transport error")
	ErrDecode         = errors.New("malformed response")
	ErrNoStorageHost  = errors.New("document storage host is not set")
	ErrDiscoveryNotOK = errors.New("service discovery did not return OK")
)
