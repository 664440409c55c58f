package mdx

import internalmdx "github.com/wc3tools/mdx/internal/mdx"

// SpatialIndex supports bounding-box queries over a model's geosets,
// backed by an R-tree.
type SpatialIndex struct {
	inner *internalmdx.SpatialIndex
}

// BuildGeosetIndex indexes every geoset in m by its derived AABB.
//
// Example:
//
//	idx := mdx.BuildGeosetIndex(model)
//	hits := idx.Query(mdx.BoundingBox{Min: mdx.Vec3{0, 0, 0}, Max: mdx.Vec3{100, 100, 100}})
func BuildGeosetIndex(m *Model) *SpatialIndex {
	return &SpatialIndex{inner: internalmdx.BuildGeosetIndex(m)}
}

// Query returns the indices into Model.Geosets of every geoset whose
// bounds intersect box.
func (idx *SpatialIndex) Query(box BoundingBox) []int {
	return idx.inner.Query(box)
}
