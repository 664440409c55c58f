package mdx

import "testing"

func TestPublicSpatialIndexQuery(t *testing.T) {
	model := &Model{
		Geosets: []*Geoset{
			{Bounds: BoundingBox{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}},
		},
	}
	idx := BuildGeosetIndex(model)
	hits := idx.Query(BoundingBox{Min: Vec3{-1, -1, -1}, Max: Vec3{2, 2, 2}})
	if len(hits) != 1 || hits[0] != 0 {
		t.Fatalf("hits = %v, want [0]", hits)
	}
}
