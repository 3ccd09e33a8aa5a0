package combine

import "errors"

// ErrUnknownMethod is returned when parsing an unsupported method name.
var ErrUnknownMethod = errors.New("combine: unknown method")
