package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseMTLS iterates materials, each prefixed by an inclusive u32 size:
// the size field's own 4 bytes count toward it, so the next record
// begins at sizeFieldPos+matSize, not bodyStart+matSize. Getting this
// wrong desynchronises the reader for the rest of the file.
func parseMTLS(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		sizeFieldPos := r.Position()
		matSize, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "MTLS size"}
		}
		priorityPlane, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "MTLS priority_plane"}
		}
		renderMode, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "MTLS render_mode"}
		}

		mat := Material{PriorityPlane: priorityPlane, RenderMode: renderMode}
		recordEnd := sizeFieldPos + int64(matSize)

		if r.Position() < recordEnd {
			kw, err := r.ReadKeyword()
			if err != nil {
				return &ErrUnexpectedEOF{Position: r.Position(), Context: "MTLS LAYS probe"}
			}
			if kw == "LAYS" {
				layerCount, err := r.ReadU32()
				if err != nil {
					return &ErrUnexpectedEOF{Position: r.Position(), Context: "MTLS layer count"}
				}
				for i := uint32(0); i < layerCount; i++ {
					layer, err := parseLayer(r)
					if err != nil {
						return err
					}
					mat.Layers = append(mat.Layers, layer)
				}
			} else {
				r.SeekRel(-4)
			}
		}

		seekToSizeEnd(r, sizeFieldPos, int64(matSize))
		m.Materials = append(m.Materials, mat)
	}
	return nil
}

// parseLayer reads one material layer, which carries its own inclusive
// u32 size so any embedded animation tracks can be skipped uniformly.
func parseLayer(r *bytereader.Reader) (Layer, error) {
	var layer Layer
	layerStart := r.Position()
	layerSize, err := r.ReadU32()
	if err != nil {
		return layer, &ErrUnexpectedEOF{Position: r.Position(), Context: "layer size"}
	}
	filterMode, err := r.ReadU32()
	if err != nil {
		return layer, &ErrUnexpectedEOF{Position: r.Position(), Context: "layer filter_mode"}
	}
	shading, err := r.ReadU32()
	if err != nil {
		return layer, &ErrUnexpectedEOF{Position: r.Position(), Context: "layer shading"}
	}
	textureID, err := r.ReadI32()
	if err != nil {
		return layer, &ErrUnexpectedEOF{Position: r.Position(), Context: "layer texture_id"}
	}
	if _, err := r.ReadI32(); err != nil { // tvertex_anim_id, skipped
		return layer, &ErrUnexpectedEOF{Position: r.Position(), Context: "layer tvertex_anim_id"}
	}
	coordID, err := r.ReadU32()
	if err != nil {
		return layer, &ErrUnexpectedEOF{Position: r.Position(), Context: "layer coord_id"}
	}
	alpha, err := r.ReadF32()
	if err != nil {
		return layer, &ErrUnexpectedEOF{Position: r.Position(), Context: "layer alpha"}
	}

	layer.FilterMode = filterMode
	layer.Shading = shading
	layer.CoordID = coordID
	layer.Alpha = alpha
	if textureID >= 0 {
		layer.TextureID = &textureID
	}

	seekToSizeEnd(r, layerStart, int64(layerSize))
	return layer, nil
}
