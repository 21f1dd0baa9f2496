package geometry

import "golang.org/x/xerrors"

var (
	ErrInvalidMesh       = xerrors.New("geometry: invalid triangle mesh")
	ErrSingularTransform = xerrors.New("geometry: instance transform is not invertible")
)
