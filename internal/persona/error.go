package persona

import "errors"

var ErrPersonaNotFound = errors.New("persona not found")
