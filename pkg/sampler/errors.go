package sampler

import "golang.org/x/xerrors"

// ErrInvalidPattern is returned when a pattern cannot be generated from the requested parameters
var ErrInvalidPattern = xerrors.New("sampler: invalid pattern parameters")
