package errors

import "github.com/pkg/errors"

var (
	// provider errors
	ErrUnsupportedProvider = errors.New("unsupported email provider")

	// session errors
	ErrNotConnected = errors.New("not connected to mail server")
	ErrEmptyMessage = errors.New("server returned no message data")
)
