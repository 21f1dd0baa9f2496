package core

import "golang.org/x/xerrors"

var (
	ErrInvalidKDTreeConfig = xerrors.New("core: invalid kd-tree configuration")
	ErrTraversalOverflow   = xerrors.New("core: kd-tree traversal stack overflow")
	ErrMissingMaterial     = xerrors.New("core: intersected surface has no material")
)
