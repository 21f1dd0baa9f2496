package renderer

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	Eye       core.Vec3 // Center of projection
	LookAt    core.Vec3 // Point the camera looks at
	Up        core.Vec3 // Approximate up direction
	Distance  float64   // Distance from the eye to the view plane
	Zoom      float64   // Magnification; pixel size is divided by zoom
	ViewWidth float64   // Width of the view plane; pixel size is ViewWidth/width
	Exposure  float64   // Scale applied to every pixel's radiance
}

// DefaultCameraConfig returns a camera on the +Z axis looking at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:       core.NewVec3(0, 0, 500),
		LookAt:    core.NewVec3(0, 0, 0),
		Up:        core.NewVec3(0, 1, 0),
		Distance:  500,
		Zoom:      1,
		ViewWidth: 400,
		Exposure:  1,
	}
}

// PinholeCamera shoots every ray from the eye through a point on a view
// plane perpendicular to the viewing direction. Row 0 is the top of the image.
type PinholeCamera struct {
	eye      core.Vec3
	u, v, w  core.Vec3 // Orthonormal camera frame; the camera looks down -w
	distance float64
	scale    float64 // Pixel size on the view plane
	exposure float64
	width    int
	height   int
}

// NewPinholeCamera creates a camera for a width×height image
func NewPinholeCamera(config CameraConfig, width, height int) (*PinholeCamera, error) {
	switch {
	case width <= 0 || height <= 0:
		return nil, xerrors.Errorf("image size %dx%d: %w", width, height, ErrInvalidCamera)
	case config.Zoom == 0:
		return nil, xerrors.Errorf("zoom is zero: %w", ErrInvalidCamera)
	case config.Distance <= 0:
		return nil, xerrors.Errorf("view plane distance %g: %w", config.Distance, ErrInvalidCamera)
	case config.ViewWidth <= 0:
		return nil, xerrors.Errorf("view plane width %g: %w", config.ViewWidth, ErrInvalidCamera)
	case config.Eye == config.LookAt:
		return nil, xerrors.Errorf("eye and look-at are both %v: %w", config.Eye, ErrInvalidCamera)
	case config.Up.IsZero():
		return nil, xerrors.Errorf("up vector is zero: %w", ErrInvalidCamera)
	}

	c := &PinholeCamera{
		eye:      config.Eye,
		distance: config.Distance,
		scale:    config.ViewWidth / float64(width) / config.Zoom,
		exposure: config.Exposure,
		width:    width,
		height:   height,
	}
	c.u, c.v, c.w = cameraFrame(config.Eye, config.LookAt, config.Up)
	return c, nil
}

// cameraFrame builds the u, v, w basis. Looking straight along the up
// direction leaves u undefined, so those two views get a fixed frame.
func cameraFrame(eye, lookAt, up core.Vec3) (u, v, w core.Vec3) {
	w = eye.Subtract(lookAt).Normalize()
	up = up.Normalize()
	if math.Abs(w.Dot(up)) > 1-1e-9 {
		if w.Dot(up) > 0 {
			// Looking down
			return core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)
		}
		return core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(0, -1, 0)
	}
	u = up.Cross(w).Normalize()
	v = w.Cross(u)
	return u, v, w
}

// RayFor returns the primary ray through pixel (col, row) offset by a
// sample in the unit square
func (c *PinholeCamera) RayFor(col, row int, sample core.Vec2) core.Ray {
	x := c.scale * (float64(col) - 0.5*float64(c.width) + sample.X)
	y := c.scale * (float64(c.height-1-row) - 0.5*float64(c.height) + sample.Y)
	dir := c.u.Multiply(x).Add(c.v.Multiply(y)).Subtract(c.w.Multiply(c.distance))
	return core.NewRay(c.eye, dir)
}

// Exposure returns the radiance scale for every pixel
func (c *PinholeCamera) Exposure() float64 {
	return c.exposure
}

// Frame returns the camera basis; the camera looks along -w
func (c *PinholeCamera) Frame() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}
