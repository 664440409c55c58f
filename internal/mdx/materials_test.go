package mdx

import (
	"encoding/binary"
	"testing"

	"github.com/wc3tools/mdx/internal/bytereader"
)

func TestParseMTLSWithLayer(t *testing.T) {
	var b mdxBuilder

	matStart := len(b.buf)
	b.u32(0) // matSize placeholder
	b.u32(7) // priority_plane
	b.u32(1) // render_mode
	b.tag("LAYS")
	b.u32(1) // layer count

	layerStart := len(b.buf)
	b.u32(0)   // layerSize placeholder
	b.u32(2)   // filter_mode
	b.u32(0)   // shading
	b.i32(3)   // texture_id
	b.i32(-1)  // tvertex_anim_id
	b.u32(0)   // coord_id
	b.f32(0.5) // alpha
	layerSize := uint32(len(b.buf) - layerStart)
	binary.LittleEndian.PutUint32(b.buf[layerStart:], layerSize)

	matSize := uint32(len(b.buf) - matStart)
	binary.LittleEndian.PutUint32(b.buf[matStart:], matSize)

	r := bytereader.New(b.buf)
	m := &Model{}
	if err := parseMTLS(r, m, int64(len(b.buf))); err != nil {
		t.Fatalf("parseMTLS: %v", err)
	}
	if len(m.Materials) != 1 {
		t.Fatalf("len(Materials) = %d, want 1", len(m.Materials))
	}
	mat := m.Materials[0]
	if mat.PriorityPlane != 7 || mat.RenderMode != 1 {
		t.Fatalf("mat = %+v", mat)
	}
	if len(mat.Layers) != 1 {
		t.Fatalf("len(Layers) = %d, want 1", len(mat.Layers))
	}
	layer := mat.Layers[0]
	if layer.FilterMode != 2 || layer.Alpha != 0.5 {
		t.Fatalf("layer = %+v", layer)
	}
	if layer.TextureID == nil || *layer.TextureID != 3 {
		t.Fatalf("layer.TextureID = %v, want 3", layer.TextureID)
	}
}

func TestParseMTLSWithoutLayers(t *testing.T) {
	var b mdxBuilder
	matStart := len(b.buf)
	b.u32(0)
	b.u32(0)
	b.u32(0)
	matSize := uint32(len(b.buf) - matStart)
	binary.LittleEndian.PutUint32(b.buf[matStart:], matSize)

	r := bytereader.New(b.buf)
	m := &Model{}
	if err := parseMTLS(r, m, int64(len(b.buf))); err != nil {
		t.Fatalf("parseMTLS: %v", err)
	}
	if len(m.Materials) != 1 || len(m.Materials[0].Layers) != 0 {
		t.Fatalf("Materials = %+v", m.Materials)
	}
}
