package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")

var ErrMissingAuthHeader = errors.New("missing authorization header")
var ErrFailedToGetUUID = errors.New("failed to get uid from context")
