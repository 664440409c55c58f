package mdx

import (
	"encoding/binary"
	"testing"

	"github.com/wc3tools/mdx/internal/bytereader"
)

func buildCLIDNode(b *mdxBuilder, name string, objectID int32) {
	nodeStart := len(b.buf)
	b.u32(0)
	b.fixed(name, 80)
	b.i32(objectID)
	b.i32(-1)
	b.u32(0)
	nodeSize := uint32(len(b.buf) - nodeStart)
	binary.LittleEndian.PutUint32(b.buf[nodeStart:], nodeSize)
}

func TestParseCLIDSphere(t *testing.T) {
	var b mdxBuilder
	buildCLIDNode(&b, "Collision", 0)
	b.u32(uint32(CollisionSphere))
	b.vec3(1, 2, 3)
	b.f32(4.5)

	r := bytereader.New(b.buf)
	m := &Model{}
	if err := parseCLID(r, m, int64(len(b.buf))); err != nil {
		t.Fatalf("parseCLID: %v", err)
	}
	if len(m.Collisions) != 1 {
		t.Fatalf("len(Collisions) = %d, want 1", len(m.Collisions))
	}
	shape := m.Collisions[0]
	if shape.Kind != CollisionSphere {
		t.Fatalf("Kind = %v, want CollisionSphere", shape.Kind)
	}
	if len(shape.Floats) != 3 {
		t.Fatalf("len(Floats) = %d, want 3", len(shape.Floats))
	}
	if shape.Radius == nil || *shape.Radius != 4.5 {
		t.Fatalf("Radius = %v, want 4.5", shape.Radius)
	}
}

func TestParseCLIDBoxSixFloats(t *testing.T) {
	var b mdxBuilder
	buildCLIDNode(&b, "Box", 0)
	b.u32(uint32(CollisionBox))
	for i := 0; i < 6; i++ {
		b.f32(float32(i))
	}

	r := bytereader.New(b.buf)
	m := &Model{}
	if err := parseCLID(r, m, int64(len(b.buf))); err != nil {
		t.Fatalf("parseCLID: %v", err)
	}
	shape := m.Collisions[0]
	if len(shape.Floats) != 6 {
		t.Fatalf("len(Floats) = %d, want 6", len(shape.Floats))
	}
	if shape.Radius != nil {
		t.Fatal("expected no radius for Box")
	}
}

func TestParseCLIDUnknownKindIsCorrupt(t *testing.T) {
	var b mdxBuilder
	buildCLIDNode(&b, "Weird", 0)
	b.u32(99)

	r := bytereader.New(b.buf)
	m := &Model{}
	err := parseCLID(r, m, int64(len(b.buf)))
	if err == nil {
		t.Fatal("expected error for unknown CLID kind")
	}
	if _, ok := err.(*ErrCorrupt); !ok {
		t.Fatalf("got %T, want *ErrCorrupt", err)
	}
}
