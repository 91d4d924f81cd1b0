package storage

import "errors"

var (
	ErrReadOrdersFile  = errors.New("orders file couldn't be read")
	ErrParseOrdersFile = errors.New("orders file contains malformed JSON")
	ErrWriteOrdersFile = errors.New("orders file couldn't be written")
)
