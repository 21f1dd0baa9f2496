package renderer

import "golang.org/x/xerrors"

var (
	ErrInvalidConfig    = xerrors.New("renderer: invalid configuration")
	ErrInvalidCamera    = xerrors.New("renderer: invalid camera")
	ErrInterrupted      = xerrors.New("renderer: render interrupted")
	ErrTileWrittenTwice = xerrors.New("renderer: tile written more than once")
)
