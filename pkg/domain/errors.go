package domain

import "errors"

// ErrDecode is reported when a payload cannot be decoded to the expected shape.
var ErrDecode = errors.New("payload decode failed")

// ErrEncode is reported when a value cannot be encoded to a payload.
var ErrEncode = errors.New("payload encode failed")

// ErrPayloadMismatch is reported when a payload does not match the shape declared for its action.
var ErrPayloadMismatch = errors.New("payload does not match declared shape")

// ErrCallbackPanic wraps the value of a recovered observer, transformer or error handler panic.
var ErrCallbackPanic = errors.New("callback panicked")
