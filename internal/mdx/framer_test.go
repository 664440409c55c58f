package mdx

import (
	"encoding/binary"
	"math"
	"testing"
)

// mdxBuilder assembles raw MDX byte buffers for tests.
type mdxBuilder struct {
	buf []byte
}

func newBuilder() *mdxBuilder {
	return &mdxBuilder{buf: append([]byte{}, magic...)}
}

func (b *mdxBuilder) u32(v uint32) *mdxBuilder {
	tmp := make([]byte, 4)
	binary.LittleEndian.PutUint32(tmp, v)
	b.buf = append(b.buf, tmp...)
	return b
}

func (b *mdxBuilder) i32(v int32) *mdxBuilder {
	return b.u32(uint32(v))
}

func (b *mdxBuilder) f32(v float32) *mdxBuilder {
	return b.u32(math.Float32bits(v))
}

func (b *mdxBuilder) bytes(raw []byte) *mdxBuilder {
	b.buf = append(b.buf, raw...)
	return b
}

func (b *mdxBuilder) tag(t string) *mdxBuilder {
	return b.bytes([]byte(t))
}

func (b *mdxBuilder) fixed(s string, n int) *mdxBuilder {
	raw := make([]byte, n)
	copy(raw, s)
	return b.bytes(raw)
}

func (b *mdxBuilder) vec3(x, y, z float32) *mdxBuilder {
	return b.f32(x).f32(y).f32(z)
}

func TestParseMagicOnly(t *testing.T) {
	// S1
	data := append([]byte{}, magic...)
	m, err := Parse(data, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Version != 800 {
		t.Fatalf("Version = %d, want 800", m.Version)
	}
	if m.Info.Name != "" {
		t.Fatalf("Info.Name = %q, want empty", m.Info.Name)
	}
	if m.Info.BoundsRadius != 0 {
		t.Fatalf("Info.BoundsRadius = %v, want 0", m.Info.BoundsRadius)
	}
	if m.Info.BlendTime != 150 {
		t.Fatalf("Info.BlendTime = %d, want 150", m.Info.BlendTime)
	}
	if len(m.Geosets) != 0 || len(m.Bones) != 0 || len(m.Sequences) != 0 {
		t.Fatalf("expected all lists empty, got %+v", m)
	}
}

func TestParseVersion(t *testing.T) {
	// S2
	b := newBuilder().tag("VERS").u32(4).u32(800)
	m, err := Parse(b.buf, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Version != 800 {
		t.Fatalf("Version = %d, want 800", m.Version)
	}
}

func TestParseBadMagic(t *testing.T) {
	// S3
	data := []byte{0, 0, 0, 0}
	_, err := Parse(data, DefaultOptions())
	if err == nil {
		t.Fatal("expected BadMagic error")
	}
	var badMagic *ErrBadMagic
	if _, ok := err.(*ErrBadMagic); !ok {
		t.Fatalf("got %T (%v), want %T", err, err, badMagic)
	}
}

func TestParseTrivialGeoset(t *testing.T) {
	// S4
	b := newBuilder()
	b.tag("GEOS")
	geosChunkStart := len(b.buf)
	b.u32(0) // placeholder outer GEOS chunk size, patched below

	geosetSizeFieldPos := len(b.buf)
	b.u32(0) // placeholder inclusive geoset_size, patched below
	b.tag("VRTX").u32(3).
		vec3(0, 0, 0).vec3(1, 0, 0).vec3(0, 1, 0)
	b.tag("PVTX").u32(3).
		bytes(u16le(0)).bytes(u16le(1)).bytes(u16le(2))

	geosetSize := uint32(len(b.buf) - geosetSizeFieldPos)
	binary.LittleEndian.PutUint32(b.buf[geosetSizeFieldPos:], geosetSize)

	geosChunkSize := uint32(len(b.buf) - (geosChunkStart + 4))
	binary.LittleEndian.PutUint32(b.buf[geosChunkStart:], geosChunkSize)

	m, err := Parse(b.buf, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Geosets) != 1 {
		t.Fatalf("len(Geosets) = %d, want 1", len(m.Geosets))
	}
	g := m.Geosets[0]
	if len(g.Vertices) != 3 {
		t.Fatalf("len(Vertices) = %d, want 3", len(g.Vertices))
	}
	if len(g.Faces) != 1 {
		t.Fatalf("len(Faces) = %d, want 1", len(g.Faces))
	}
	if g.Bounds.Min != (Vec3{0, 0, 0}) || g.Bounds.Max != (Vec3{1, 1, 0}) {
		t.Fatalf("Bounds = %+v, want min (0,0,0) max (1,1,0)", g.Bounds)
	}
}

func TestParseUnknownTopLevelTagTolerated(t *testing.T) {
	// S5
	b := newBuilder()
	b.tag("XXXX").u32(8).bytes(make([]byte, 8))
	b.tag("VERS").u32(4).u32(800)

	m, err := Parse(b.buf, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Version != 800 {
		t.Fatalf("Version = %d, want 800", m.Version)
	}
}

func TestParsePivotBinding(t *testing.T) {
	// S6
	b := newBuilder()
	b.tag("BONE")
	boneChunkStart := len(b.buf)
	b.u32(0) // placeholder, patched below

	nodeStart := len(b.buf)
	b.u32(0) // placeholder node_size, patched below
	b.fixed("Bone2", 80)
	b.i32(2)  // object_id
	b.i32(-1) // parent
	b.u32(0)  // flags
	nodeSize := uint32(len(b.buf) - nodeStart)
	binary.LittleEndian.PutUint32(b.buf[nodeStart:], nodeSize)

	b.i32(-1) // geoset_id
	b.i32(-1) // geoset_anim_id

	boneChunkSize := uint32(len(b.buf) - (boneChunkStart + 4))
	binary.LittleEndian.PutUint32(b.buf[boneChunkStart:], boneChunkSize)

	b.tag("PIVT")
	b.u32(3 * 12)
	b.vec3(0, 0, 0)
	b.vec3(1, 1, 1)
	v2 := Vec3{2, 2, 2}
	b.vec3(v2[0], v2[1], v2[2])

	m, err := Parse(b.buf, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Nodes) != 3 {
		t.Fatalf("len(Nodes) = %d, want 3", len(m.Nodes))
	}
	if m.Nodes[0] != nil || m.Nodes[1] != nil {
		t.Fatalf("expected nodes[0] and nodes[1] absent")
	}
	if m.Nodes[2] == nil {
		t.Fatal("expected nodes[2] present")
	}
	if m.Nodes[2].PivotPoint == nil || *m.Nodes[2].PivotPoint != v2 {
		t.Fatalf("nodes[2].PivotPoint = %v, want %v", m.Nodes[2].PivotPoint, v2)
	}
}

func TestParseFaceIndexOutOfRangeIsCorrupt(t *testing.T) {
	b := newBuilder()
	b.tag("GEOS")
	geosChunkStart := len(b.buf)
	b.u32(0)

	geosetSizeFieldPos := len(b.buf)
	b.u32(0)
	b.tag("VRTX").u32(1).vec3(0, 0, 0)
	b.tag("PVTX").u32(3).bytes(u16le(0)).bytes(u16le(1)).bytes(u16le(2))

	geosetSize := uint32(len(b.buf) - geosetSizeFieldPos)
	binary.LittleEndian.PutUint32(b.buf[geosetSizeFieldPos:], geosetSize)
	geosChunkSize := uint32(len(b.buf) - (geosChunkStart + 4))
	binary.LittleEndian.PutUint32(b.buf[geosChunkStart:], geosChunkSize)

	_, err := Parse(b.buf, DefaultOptions())
	if err == nil {
		t.Fatal("expected ErrCorrupt for out-of-range face index")
	}
	if _, ok := err.(*ErrCorrupt); !ok {
		t.Fatalf("got %T, want *ErrCorrupt", err)
	}
}

func u16le(v uint16) []byte {
	return []byte{byte(v), byte(v >> 8)}
}

func BenchmarkParse(b *testing.B) {
	bb := newBuilder()
	bb.tag("VERS").u32(4).u32(800)
	bb.tag("GEOS")
	geosChunkStart := len(bb.buf)
	bb.u32(0)
	geosetSizeFieldPos := len(bb.buf)
	bb.u32(0)
	bb.tag("VRTX").u32(3).
		vec3(0, 0, 0).vec3(1, 0, 0).vec3(0, 1, 0)
	bb.tag("PVTX").u32(3).
		bytes(u16le(0)).bytes(u16le(1)).bytes(u16le(2))
	geosetSize := uint32(len(bb.buf) - geosetSizeFieldPos)
	binary.LittleEndian.PutUint32(bb.buf[geosetSizeFieldPos:], geosetSize)
	geosChunkSize := uint32(len(bb.buf) - (geosChunkStart + 4))
	binary.LittleEndian.PutUint32(bb.buf[geosChunkStart:], geosChunkSize)

	opts := DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(bb.buf, opts); err != nil {
			b.Fatalf("parse failed: %v", err)
		}
	}
}
