package core

import "math"

// ONB is an orthonormal basis with W along a chosen direction
type ONB struct {
	U, V, W Vec3
}

// NewONB builds a basis around w, which need not be normalized
func NewONB(w Vec3) ONB {
	w = w.Normalize()

	// Find a vector that is not parallel to w
	var a Vec3
	if math.Abs(w.X) > 0.1 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := v.Cross(w)
	return ONB{U: u, V: v, W: w}
}

// Local maps coordinates expressed in the basis to world space
func (o ONB) Local(p Vec3) Vec3 {
	return o.U.Multiply(p.X).Add(o.V.Multiply(p.Y)).Add(o.W.Multiply(p.Z))
}
