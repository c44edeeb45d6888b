// ABOUTME: Navigator-level sentinel errors
// ABOUTME: Expected conditions the command layer turns into user messages

package navigator

import "errors"

// ErrNoBuffer is returned when an operation needs a visible buffer and none
// exists.
var ErrNoBuffer = errors.New("no visible buffer")
