package core

import (
	"math"
	"sort"

	"golang.org/x/xerrors"
)

// maxTraversalDepth bounds both the build depth and the traversal stack
const maxTraversalDepth = 64

// KDTreeConfig holds the surface area heuristic parameters used to build a KDTree
type KDTreeConfig struct {
	IntersectCost   float64 // Estimated cost of one primitive intersection
	TraversalCost   float64 // Estimated cost of visiting an interior node
	EmptyBonus      float64 // Cost discount for splits that leave one side empty, in [0, 1)
	MaxPrimsPerLeaf int     // Nodes with this many primitives or fewer become leaves
	MaxDepth        int     // Maximum tree depth; negative selects 8 + 1.3*log2(N)
}

// DefaultKDTreeConfig returns the usual SAH parameters
func DefaultKDTreeConfig() KDTreeConfig {
	return KDTreeConfig{
		IntersectCost:   80,
		TraversalCost:   1,
		EmptyBonus:      0.5,
		MaxPrimsPerLeaf: 1,
		MaxDepth:        -1,
	}
}

// Validate checks the configuration for values the builder cannot work with
func (c KDTreeConfig) Validate() error {
	switch {
	case c.MaxDepth == 0 || c.MaxDepth > maxTraversalDepth:
		return xerrors.Errorf("max depth %d outside [1, %d]: %w", c.MaxDepth, maxTraversalDepth, ErrInvalidKDTreeConfig)
	case c.MaxPrimsPerLeaf < 1:
		return xerrors.Errorf("max primitives per leaf %d < 1: %w", c.MaxPrimsPerLeaf, ErrInvalidKDTreeConfig)
	case c.IntersectCost < 0 || c.TraversalCost < 0:
		return xerrors.Errorf("negative cost (intersect %g, traversal %g): %w", c.IntersectCost, c.TraversalCost, ErrInvalidKDTreeConfig)
	case c.EmptyBonus < 0 || c.EmptyBonus >= 1:
		return xerrors.Errorf("empty bonus %g outside [0, 1): %w", c.EmptyBonus, ErrInvalidKDTreeConfig)
	}
	return nil
}

// kdNode is either a leaf or an interior node. Interior nodes store their
// "below" child in the next slot of the node array and the index of the
// "above" child explicitly.
type kdNode struct {
	leaf  bool
	axis  int     // Split axis (interior)
	split float64 // Split position (interior)
	count int     // Number of primitives (leaf)
	index int     // Offset into primIndices (leaf) or above child (interior)
}

// boundEdge is the start or end of a primitive's extent along one axis
type boundEdge struct {
	t     float64
	prim  int
	start bool
}

// kdTodo is a deferred far child together with its parametric interval
type kdTodo struct {
	node       int
	tMin, tMax float64
}

// KDTree is a surface-area-heuristic kd-tree over a fixed set of shapes.
// It is immutable after construction and safe for concurrent queries.
type KDTree struct {
	config      KDTreeConfig
	shapes      []Shape
	nodes       []kdNode
	primIndices []int
	bounds      AABB
	maxDepth    int
}

// NewKDTree builds a kd-tree over shapes
func NewKDTree(shapes []Shape, config KDTreeConfig) (*KDTree, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	tree := &KDTree{
		config: config,
		shapes: shapesCopy,
	}

	n := len(shapesCopy)
	if n == 0 {
		tree.nodes = []kdNode{{leaf: true}}
		return tree, nil
	}

	tree.maxDepth = config.MaxDepth
	if tree.maxDepth < 0 {
		tree.maxDepth = int(math.Round(8 + 1.3*math.Log2(float64(n))))
	}
	tree.maxDepth = min(tree.maxDepth, maxTraversalDepth)

	primBounds := make([]AABB, n)
	prims := make([]int, n)
	for i, shape := range shapesCopy {
		primBounds[i] = shape.BoundingBox()
		prims[i] = i
		if i == 0 {
			tree.bounds = primBounds[i]
		} else {
			tree.bounds = tree.bounds.Union(primBounds[i])
		}
	}

	var edges [3][]boundEdge
	for axis := range edges {
		edges[axis] = make([]boundEdge, 0, 2*n)
	}

	tree.buildTree(tree.bounds, primBounds, prims, tree.maxDepth, &edges, 0)
	return tree, nil
}

func (tree *KDTree) makeLeaf(prims []int) {
	tree.nodes = append(tree.nodes, kdNode{
		leaf:  true,
		count: len(prims),
		index: len(tree.primIndices),
	})
	tree.primIndices = append(tree.primIndices, prims...)
}

// buildTree appends the subtree for prims to the node array, below child first
func (tree *KDTree) buildTree(bounds AABB, primBounds []AABB, prims []int, depth int, edges *[3][]boundEdge, badRefines int) {
	if len(prims) <= tree.config.MaxPrimsPerLeaf || depth == 0 {
		tree.makeLeaf(prims)
		return
	}

	totalSA := bounds.SurfaceArea()
	if totalSA <= 0 {
		tree.makeLeaf(prims)
		return
	}
	invTotalSA := 1 / totalSA
	d := bounds.Size()

	bestAxis, bestOffset := -1, -1
	bestCost := math.Inf(1)
	oldCost := tree.config.IntersectCost * float64(len(prims))

	axis := bounds.LongestAxis()
	for retries := 0; ; retries++ {
		es := edges[axis][:0]
		for _, p := range prims {
			pb := primBounds[p]
			es = append(es,
				boundEdge{t: pb.Min.Axis(axis), prim: p, start: true},
				boundEdge{t: pb.Max.Axis(axis), prim: p, start: false})
		}
		// Ties put starts before ends
		sort.Slice(es, func(i, j int) bool {
			if es[i].t == es[j].t {
				return es[i].start && !es[j].start
			}
			return es[i].t < es[j].t
		})
		edges[axis] = es

		lo, hi := bounds.Min.Axis(axis), bounds.Max.Axis(axis)
		other0, other1 := (axis+1)%3, (axis+2)%3
		d0, d1 := d.Axis(other0), d.Axis(other1)

		nBelow, nAbove := 0, len(prims)
		for i, e := range es {
			if !e.start {
				nAbove--
			}
			if e.t > lo && e.t < hi {
				belowSA := 2 * (d0*d1 + (e.t-lo)*(d0+d1))
				aboveSA := 2 * (d0*d1 + (hi-e.t)*(d0+d1))
				pBelow := belowSA * invTotalSA
				pAbove := aboveSA * invTotalSA
				eb := 0.0
				if nAbove == 0 || nBelow == 0 {
					eb = tree.config.EmptyBonus
				}
				cost := tree.config.TraversalCost +
					tree.config.IntersectCost*(1-eb)*(pBelow*float64(nBelow)+pAbove*float64(nAbove))
				if cost < bestCost {
					bestCost = cost
					bestAxis = axis
					bestOffset = i
				}
			}
			if e.start {
				nBelow++
			}
		}

		if bestAxis != -1 || retries == 2 {
			break
		}
		axis = (axis + 1) % 3
	}

	if bestCost > oldCost {
		badRefines++
	}
	if (bestCost > 4*oldCost && len(prims) < 16) || bestAxis == -1 || badRefines == 3 {
		tree.makeLeaf(prims)
		return
	}

	es := edges[bestAxis]
	below := make([]int, 0, len(prims))
	above := make([]int, 0, len(prims))
	for _, e := range es[:bestOffset] {
		if e.start {
			below = append(below, e.prim)
		}
	}
	for _, e := range es[bestOffset+1:] {
		if !e.start {
			above = append(above, e.prim)
		}
	}

	split := es[bestOffset].t
	belowBounds, aboveBounds := bounds, bounds
	belowBounds.Max = belowBounds.Max.WithAxis(bestAxis, split)
	aboveBounds.Min = aboveBounds.Min.WithAxis(bestAxis, split)

	nodeNum := len(tree.nodes)
	tree.nodes = append(tree.nodes, kdNode{axis: bestAxis, split: split})
	tree.buildTree(belowBounds, primBounds, below, depth-1, edges, badRefines)
	tree.nodes[nodeNum].index = len(tree.nodes)
	tree.buildTree(aboveBounds, primBounds, above, depth-1, edges, badRefines)
}

// BoundingBox returns the bounds of every shape in the tree
func (tree *KDTree) BoundingBox() AABB {
	return tree.bounds
}

// Hit returns the nearest intersection with t in (tMin, tMax)
func (tree *KDTree) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if len(tree.shapes) == 0 {
		return nil, false
	}
	t0, t1, ok := tree.bounds.IntersectP(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	var todo [maxTraversalDepth]kdTodo
	todoPos := 0

	var closest *HitRecord
	closestT := tMax
	nodeIdx := 0
	for {
		node := &tree.nodes[nodeIdx]
		switch {
		case closestT < t0:
			// The node starts beyond the closest hit. Entries left on the
			// stack are not ordered when the ray lies in a split plane, so
			// only this node is skipped.
		case !node.leaf:
			first, second, tPlane := tree.orderChildren(node, nodeIdx, ray)
			switch {
			case tPlane > t1 || tPlane <= 0:
				nodeIdx = first
			case tPlane < t0:
				nodeIdx = second
			default:
				if todoPos == maxTraversalDepth {
					panic(ErrTraversalOverflow)
				}
				todo[todoPos] = kdTodo{node: second, tMin: tPlane, tMax: t1}
				todoPos++
				nodeIdx = first
				t1 = tPlane
			}
			continue
		default:
			for _, p := range tree.primIndices[node.index : node.index+node.count] {
				if rec, hit := tree.shapes[p].Hit(ray, tMin, closestT); hit {
					closest = rec
					closestT = rec.T
				}
			}
		}

		if todoPos == 0 {
			break
		}
		todoPos--
		nodeIdx = todo[todoPos].node
		t0 = todo[todoPos].tMin
		t1 = todo[todoPos].tMax
	}

	return closest, closest != nil
}

// HitAny reports whether any shape intersects the ray with t in (tMin, tMax)
func (tree *KDTree) HitAny(ray Ray, tMin, tMax float64) bool {
	if len(tree.shapes) == 0 {
		return false
	}
	t0, t1, ok := tree.bounds.IntersectP(ray, tMin, tMax)
	if !ok {
		return false
	}

	var todo [maxTraversalDepth]kdTodo
	todoPos := 0
	nodeIdx := 0
	for {
		node := &tree.nodes[nodeIdx]
		if !node.leaf {
			first, second, tPlane := tree.orderChildren(node, nodeIdx, ray)
			switch {
			case tPlane > t1 || tPlane <= 0:
				nodeIdx = first
			case tPlane < t0:
				nodeIdx = second
			default:
				if todoPos == maxTraversalDepth {
					panic(ErrTraversalOverflow)
				}
				todo[todoPos] = kdTodo{node: second, tMin: tPlane, tMax: t1}
				todoPos++
				nodeIdx = first
				t1 = tPlane
			}
			continue
		}

		for _, p := range tree.primIndices[node.index : node.index+node.count] {
			if tree.shapes[p].HitAny(ray, tMin, tMax) {
				return true
			}
		}

		if todoPos == 0 {
			return false
		}
		todoPos--
		nodeIdx = todo[todoPos].node
		t0 = todo[todoPos].tMin
		t1 = todo[todoPos].tMax
	}
}

// orderChildren returns the near and far children of an interior node as
// seen from the ray origin, and the ray parameter of the split plane.
func (tree *KDTree) orderChildren(node *kdNode, nodeIdx int, ray Ray) (int, int, float64) {
	origin := ray.Origin.Axis(node.axis)
	dir := ray.Direction.Axis(node.axis)
	tPlane := (node.split - origin) / dir

	belowFirst := origin < node.split || (origin == node.split && dir <= 0)
	if belowFirst {
		return nodeIdx + 1, node.index, tPlane
	}
	return node.index, nodeIdx + 1, tPlane
}

// KDTreeStats summarizes the shape of a built tree
type KDTreeStats struct {
	Primitives     int
	TotalNodes     int
	LeafNodes      int
	EmptyLeaves    int
	MaxDepth       int     // Deepest leaf actually built
	DepthLimit     int     // Depth limit the build ran with
	AvgPrimsInLeaf float64 // Mean primitive references per non-empty leaf
}

// Stats walks the tree and reports its shape
func (tree *KDTree) Stats() KDTreeStats {
	stats := KDTreeStats{
		Primitives: len(tree.shapes),
		TotalNodes: len(tree.nodes),
		DepthLimit: tree.maxDepth,
	}
	refs := 0
	tree.collectStats(0, 0, &stats, &refs)
	if filled := stats.LeafNodes - stats.EmptyLeaves; filled > 0 {
		stats.AvgPrimsInLeaf = float64(refs) / float64(filled)
	}
	return stats
}

func (tree *KDTree) collectStats(nodeIdx, depth int, stats *KDTreeStats, refs *int) {
	node := tree.nodes[nodeIdx]
	if node.leaf {
		stats.LeafNodes++
		if node.count == 0 {
			stats.EmptyLeaves++
		}
		*refs += node.count
		stats.MaxDepth = max(stats.MaxDepth, depth)
		return
	}
	tree.collectStats(nodeIdx+1, depth+1, stats, refs)
	tree.collectStats(node.index, depth+1, stats, refs)
}
