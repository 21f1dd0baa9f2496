package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"golang.org/x/xerrors"
)

// TriangleMesh represents a collection of triangles sharing one vertex array.
// It uses an internal kd-tree for fast intersection tests.
type TriangleMesh struct {
	vertices  []core.Vec3
	normals   []core.Vec3 // Per-vertex normals, nil for flat shading
	faces     []int
	materials []core.Material
	tree      *core.KDTree
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Normals   []core.Vec3        // Optional per-vertex normals for smooth shading
	Materials []core.Material    // Optional per-triangle materials
	KDTree    *core.KDTreeConfig // Optional kd-tree parameters for the internal index
}

// MeshTriangle is one face of a TriangleMesh
type MeshTriangle struct {
	mesh   *TriangleMesh
	face   int
	normal core.Vec3
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// material: default material for all triangles
// options: optional parameters (can be nil for basic mesh)
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, xerrors.Errorf("%d face indices is not a multiple of 3: %w", len(faces), ErrInvalidMesh)
	}
	for _, idx := range faces {
		if idx < 0 || idx >= len(vertices) {
			return nil, xerrors.Errorf("face index %d outside %d vertices: %w", idx, len(vertices), ErrInvalidMesh)
		}
	}

	numTriangles := len(faces) / 3
	mesh := &TriangleMesh{
		vertices:  vertices,
		faces:     faces,
		materials: make([]core.Material, numTriangles),
	}
	for i := range mesh.materials {
		mesh.materials[i] = material
	}

	config := core.DefaultKDTreeConfig()
	if options != nil {
		if options.Normals != nil {
			if len(options.Normals) != len(vertices) {
				return nil, xerrors.Errorf("%d normals for %d vertices: %w", len(options.Normals), len(vertices), ErrInvalidMesh)
			}
			mesh.normals = options.Normals
		}
		if options.Materials != nil {
			if len(options.Materials) != numTriangles {
				return nil, xerrors.Errorf("%d materials for %d triangles: %w", len(options.Materials), numTriangles, ErrInvalidMesh)
			}
			copy(mesh.materials, options.Materials)
		}
		if options.KDTree != nil {
			config = *options.KDTree
		}
	}

	triangles := make([]core.Shape, numTriangles)
	for i := range triangles {
		v0, v1, v2 := mesh.corners(i)
		triangles[i] = &MeshTriangle{
			mesh:   mesh,
			face:   i,
			normal: v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		}
	}

	tree, err := core.NewKDTree(triangles, config)
	if err != nil {
		return nil, xerrors.Errorf("while building mesh index: %w", err)
	}
	mesh.tree = tree
	return mesh, nil
}

func (tm *TriangleMesh) corners(face int) (core.Vec3, core.Vec3, core.Vec3) {
	i := face * 3
	return tm.vertices[tm.faces[i]], tm.vertices[tm.faces[i+1]], tm.vertices[tm.faces[i+2]]
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return tm.tree.Hit(ray, tMin, tMax)
}

// HitAny reports whether any triangle blocks the ray inside (tMin, tMax)
func (tm *TriangleMesh) HitAny(ray core.Ray, tMin, tMax float64) bool {
	return tm.tree.HitAny(ray, tMin, tMax)
}

// BoundingBox returns the bounding box of the whole mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.tree.BoundingBox()
}

// TriangleCount returns the number of triangles in the mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.faces) / 3
}

// Stats returns the shape of the mesh's internal kd-tree
func (tm *TriangleMesh) Stats() core.KDTreeStats {
	return tm.tree.Stats()
}

// Hit tests the ray against this face of the mesh
func (mt *MeshTriangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	v0, v1, v2 := mt.mesh.corners(mt.face)
	t, u, v, ok := intersectTriangle(ray, v0, v1, v2, tMin, tMax)
	if !ok {
		return nil, false
	}

	normal := mt.normal
	if mt.mesh.normals != nil {
		i := mt.face * 3
		normals := mt.mesh.normals
		normal = interpolateNormal(normals[mt.mesh.faces[i]], normals[mt.mesh.faces[i+1]], normals[mt.mesh.faces[i+2]], u, v)
	}

	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   normal,
		Material: mt.mesh.materials[mt.face],
	}, true
}

// HitAny reports whether the ray crosses this face inside (tMin, tMax)
func (mt *MeshTriangle) HitAny(ray core.Ray, tMin, tMax float64) bool {
	v0, v1, v2 := mt.mesh.corners(mt.face)
	_, _, _, ok := intersectTriangle(ray, v0, v1, v2, tMin, tMax)
	return ok
}

// BoundingBox returns the bounding box of this face
func (mt *MeshTriangle) BoundingBox() core.AABB {
	v0, v1, v2 := mt.mesh.corners(mt.face)
	return core.NewAABBFromPoints(v0, v1, v2)
}
