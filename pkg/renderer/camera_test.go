package renderer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:       core.NewVec3(0, 0, 10),
		LookAt:    core.NewVec3(0, 0, 0),
		Up:        core.NewVec3(0, 1, 0),
		Distance:  4,
		Zoom:      1,
		ViewWidth: 4,
		Exposure:  1,
	}
}

func TestPinholeCamera_CenterRay(t *testing.T) {
	camera, err := NewPinholeCamera(testCameraConfig(), 4, 4)
	if err != nil {
		t.Fatal(err)
	}

	// The corner shared by the four central pixels lies on the optical axis
	ray := camera.RayFor(2, 1, core.Vec2{})
	if ray.Origin != core.NewVec3(0, 0, 10) {
		t.Errorf("Expected origin at the eye, got %v", ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected direction (0,0,-1), got %v", ray.Direction)
	}
}

func TestPinholeCamera_ImageOrientation(t *testing.T) {
	camera, err := NewPinholeCamera(testCameraConfig(), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	center := core.Vec2{X: 0.5, Y: 0.5}

	topLeft := camera.RayFor(0, 0, center).Direction
	bottomRight := camera.RayFor(3, 3, center).Direction
	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("Expected the top-left pixel to look up and left, got %v", topLeft)
	}
	if bottomRight.X <= 0 || bottomRight.Y >= 0 {
		t.Errorf("Expected the bottom-right pixel to look down and right, got %v", bottomRight)
	}
}

func TestPinholeCamera_Zoom(t *testing.T) {
	config := testCameraConfig()
	wide, _ := NewPinholeCamera(config, 4, 4)
	config.Zoom = 2
	narrow, _ := NewPinholeCamera(config, 4, 4)

	dw := wide.RayFor(0, 0, core.Vec2{}).Direction
	dn := narrow.RayFor(0, 0, core.Vec2{}).Direction
	// Off-axis offsets on the view plane halve, so tanθ halves
	tanWide := math.Hypot(dw.X, dw.Y) / -dw.Z
	tanNarrow := math.Hypot(dn.X, dn.Y) / -dn.Z
	if math.Abs(tanNarrow-tanWide/2) > 1e-12 {
		t.Errorf("Expected zoom 2 to halve tanθ %f, got %f", tanWide, tanNarrow)
	}
}

func TestPinholeCamera_LookingAlongUp(t *testing.T) {
	tests := []struct {
		name     string
		eye      core.Vec3
		expected core.Vec3
		frame    [3]core.Vec3
	}{
		{"looking down", core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0),
			[3]core.Vec3{core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}},
		{"looking up", core.NewVec3(0, -10, 0), core.NewVec3(0, 1, 0),
			[3]core.Vec3{core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(0, -1, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig()
			config.Eye = tt.eye
			camera, err := NewPinholeCamera(config, 4, 4)
			if err != nil {
				t.Fatal(err)
			}
			u, v, w := camera.Frame()
			if diff := cmp.Diff(tt.frame, [3]core.Vec3{u, v, w}, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Frame mismatch (-want +got):\n%s", diff)
			}
			d := camera.RayFor(2, 1, core.Vec2{}).Direction
			if d.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.expected, d)
			}
		})
	}
}

func TestNewPinholeCamera_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *CameraConfig)
		width  int
	}{
		{"zero zoom", func(c *CameraConfig) { c.Zoom = 0 }, 4},
		{"zero distance", func(c *CameraConfig) { c.Distance = 0 }, 4},
		{"negative view width", func(c *CameraConfig) { c.ViewWidth = -1 }, 4},
		{"eye at look-at", func(c *CameraConfig) { c.Eye = c.LookAt }, 4},
		{"zero up", func(c *CameraConfig) { c.Up = core.Vec3{} }, 4},
		{"zero width", func(c *CameraConfig) {}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig()
			tt.modify(&config)
			if _, err := NewPinholeCamera(config, tt.width, 4); !xerrors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
		})
	}
}
