package submission

import "errors"

var ErrUnknownType = errors.New("unknown submission type")
