package mdx

import "testing"

func TestBuildGeosetIndexQuery(t *testing.T) {
	m := &Model{
		Geosets: []*Geoset{
			{Bounds: BoundingBox{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}},
			{Bounds: BoundingBox{Min: Vec3{10, 10, 10}, Max: Vec3{11, 11, 11}}},
		},
	}
	idx := BuildGeosetIndex(m)

	hits := idx.Query(BoundingBox{Min: Vec3{-1, -1, -1}, Max: Vec3{2, 2, 2}})
	if len(hits) != 1 || hits[0] != 0 {
		t.Fatalf("hits = %v, want [0]", hits)
	}

	hits = idx.Query(BoundingBox{Min: Vec3{9, 9, 9}, Max: Vec3{12, 12, 12}})
	if len(hits) != 1 || hits[0] != 1 {
		t.Fatalf("hits = %v, want [1]", hits)
	}

	hits = idx.Query(BoundingBox{Min: Vec3{100, 100, 100}, Max: Vec3{101, 101, 101}})
	if len(hits) != 0 {
		t.Fatalf("hits = %v, want none", hits)
	}
}

func TestBuildGeosetIndexHandlesDegenerateBounds(t *testing.T) {
	m := &Model{
		Geosets: []*Geoset{
			{Bounds: BoundingBox{Min: Vec3{5, 5, 5}, Max: Vec3{5, 5, 5}}},
		},
	}
	idx := BuildGeosetIndex(m)
	hits := idx.Query(BoundingBox{Min: Vec3{4, 4, 4}, Max: Vec3{6, 6, 6}})
	if len(hits) != 1 || hits[0] != 0 {
		t.Fatalf("hits = %v, want [0]", hits)
	}
}
