package mdx

import "github.com/dhconnelly/rtreego"

// GeosetEntry is one R-tree leaf: a geoset's index into Model.Geosets
// alongside the bounding box that indexes it.
type GeosetEntry struct {
	Index int
	Box   BoundingBox
}

// Bounds method for rtreego.Spatial interface.
// Converts the geoset's AABB into a 3-dimensional R-tree rectangle.
func (e GeosetEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{
		float64(e.Box.Min[0]),
		float64(e.Box.Min[1]),
		float64(e.Box.Min[2]),
	}
	lengths := []float64{
		boxSpan(e.Box.Min[0], e.Box.Max[0]),
		boxSpan(e.Box.Min[1], e.Box.Max[1]),
		boxSpan(e.Box.Min[2], e.Box.Max[2]),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// boxSpan keeps degenerate (zero-extent) boxes insertable: rtreego
// rejects zero-length rectangle sides, so flat boxes are nudged open.
func boxSpan(min, max float32) float64 {
	span := float64(max - min)
	if span <= 0 {
		return 0.001
	}
	return span
}

// SpatialIndex supports bounding-box queries over a model's geosets.
//
// Spatial queries are O(log N) with the R-tree, compared to O(N) with
// linear scan, which matters for picking and culling over models with
// many geosets.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// BuildGeosetIndex indexes every geoset in m by its derived AABB.
func BuildGeosetIndex(m *Model) *SpatialIndex {
	tree := rtreego.NewTree(3, 25, 50)
	for i, g := range m.Geosets {
		tree.Insert(GeosetEntry{Index: i, Box: g.Bounds})
	}
	return &SpatialIndex{tree: tree}
}

// Query returns the indices of geosets whose bounds intersect box.
func (idx *SpatialIndex) Query(box BoundingBox) []int {
	probe := GeosetEntry{Box: box}
	hits := idx.tree.SearchIntersect(probe.Bounds())

	results := make([]int, 0, len(hits))
	for _, h := range hits {
		results = append(results, h.(GeosetEntry).Index)
	}
	return results
}
