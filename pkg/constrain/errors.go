package constrain

import "errors"

// ErrUnknownCategory is returned by Facade.Constrain for a Category outside
// the five defined values.
var ErrUnknownCategory = errors.New("unknown sign category")
