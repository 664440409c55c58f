package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseGEOS iterates geosets, each prefixed by an inclusive u32 size
// (same discipline as MTLS), containing an inner loop of 4-byte-tagged
// sub-chunks that runs until the geoset's own bytes are exhausted.
func parseGEOS(r *bytereader.Reader, m *Model, end int64, opts Options) error {
	for r.Position() < end {
		sizeFieldPos := r.Position()
		geosetSize, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "GEOS size"}
		}
		bodyEnd := sizeFieldPos + int64(geosetSize)

		geoset := &Geoset{}
		if err := parseGeosetBody(r, geoset, bodyEnd, opts); err != nil {
			return err
		}

		geoset.Bounds = computeBounds(geoset.Vertices)
		seekToSizeEnd(r, sizeFieldPos, int64(geosetSize))
		m.Geosets = append(m.Geosets, geoset)
	}
	return nil
}

func parseGeosetBody(r *bytereader.Reader, g *Geoset, bodyEnd int64, opts Options) error {
	for r.Position() < bodyEnd {
		tag, err := r.ReadKeyword()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "geoset sub-tag"}
		}
		switch tag {
		case "VRTX":
			count, err := r.ReadU32()
			if err != nil {
				return &ErrUnexpectedEOF{Position: r.Position(), Context: "VRTX count"}
			}
			for i := uint32(0); i < count; i++ {
				v, err := r.ReadVec3()
				if err != nil {
					return &ErrUnexpectedEOF{Position: r.Position(), Context: "VRTX"}
				}
				g.Vertices = append(g.Vertices, v)
			}
		case "NRMS":
			count, err := r.ReadU32()
			if err != nil {
				return &ErrUnexpectedEOF{Position: r.Position(), Context: "NRMS count"}
			}
			for i := uint32(0); i < count; i++ {
				v, err := r.ReadVec3()
				if err != nil {
					return &ErrUnexpectedEOF{Position: r.Position(), Context: "NRMS"}
				}
				g.Normals = append(g.Normals, v)
			}
		case "PTYP":
			if err := skipCountedU32s(r, "PTYP"); err != nil {
				return err
			}
		case "PCNT":
			if err := skipCountedU32s(r, "PCNT"); err != nil {
				return err
			}
		case "PVTX":
			count, err := r.ReadU32()
			if err != nil {
				return &ErrUnexpectedEOF{Position: r.Position(), Context: "PVTX count"}
			}
			for i := uint32(0); i < count; i += 3 {
				var face Face
				for j := 0; j < 3; j++ {
					idx, err := r.ReadU16()
					if err != nil {
						return &ErrUnexpectedEOF{Position: r.Position(), Context: "PVTX index"}
					}
					face.Indices[j] = idx
				}
				g.Faces = append(g.Faces, face)
			}
		case "GNDX":
			count, err := r.ReadU32()
			if err != nil {
				return &ErrUnexpectedEOF{Position: r.Position(), Context: "GNDX count"}
			}
			for i := uint32(0); i < count; i++ {
				b, err := r.ReadU8()
				if err != nil {
					return &ErrUnexpectedEOF{Position: r.Position(), Context: "GNDX"}
				}
				g.VertexGroups = append(g.VertexGroups, b)
			}
		case "MTGC":
			if err := skipCountedBytes(r, 4, "MTGC"); err != nil {
				return err
			}
		case "MATS":
			if err := skipCountedBytes(r, 4, "MATS"); err != nil {
				return err
			}
		case "TANG":
			if err := skipCountedBytes(r, 16, "TANG"); err != nil {
				return err
			}
		case "SKIN":
			if err := skipCountedBytes(r, 8, "SKIN"); err != nil {
				return err
			}
		case "UVAS":
			numSets, err := r.ReadU32()
			if err != nil {
				return &ErrUnexpectedEOF{Position: r.Position(), Context: "UVAS set count"}
			}
			for s := uint32(0); s < numSets; s++ {
				setCount, err := r.ReadU32()
				if err != nil {
					return &ErrUnexpectedEOF{Position: r.Position(), Context: "UVAS coord count"}
				}
				uvset := UVSet{}
				for i := uint32(0); i < setCount; i++ {
					uv, err := r.ReadVec2()
					if err != nil {
						return &ErrUnexpectedEOF{Position: r.Position(), Context: "UVAS"}
					}
					uvset.Coords = append(uvset.Coords, uv)
				}
				g.UVSets = append(g.UVSets, uvset)
			}
		default:
			// Unknown sub-tag: abandon the sub-loop. The outer GEOS
			// parser's inclusive reseek repositions the cursor past
			// whatever remains of this geoset.
			if !opts.SkipUnknownSubChunks {
				return &ErrBadSubChunkTag{Expected: "geoset sub-chunk", Got: tag, Position: r.Position()}
			}
			r.SeekRel(-4)
			return finishGeosetValidation(g, opts)
		}
	}
	return finishGeosetValidation(g, opts)
}

func finishGeosetValidation(g *Geoset, opts Options) error {
	if !opts.ValidateFaceIndices {
		return nil
	}
	vcount := len(g.Vertices)
	for _, f := range g.Faces {
		for _, idx := range f.Indices {
			if int(idx) >= vcount {
				return &ErrCorrupt{Reason: "face index out of range for geoset vertex list"}
			}
		}
	}
	return nil
}

func skipCountedU32s(r *bytereader.Reader, context string) error {
	count, err := r.ReadU32()
	if err != nil {
		return &ErrUnexpectedEOF{Position: r.Position(), Context: context + " count"}
	}
	for i := uint32(0); i < count; i++ {
		if _, err := r.ReadU32(); err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: context}
		}
	}
	return nil
}

func skipCountedBytes(r *bytereader.Reader, stride int, context string) error {
	count, err := r.ReadU32()
	if err != nil {
		return &ErrUnexpectedEOF{Position: r.Position(), Context: context + " count"}
	}
	if _, err := r.ReadExact(int(count) * stride); err != nil {
		return &ErrUnexpectedEOF{Position: r.Position(), Context: context}
	}
	return nil
}

// computeBounds returns the axis-aligned bounding box over vs, or the
// zero box when vs is empty.
func computeBounds(vs []Vec3) BoundingBox {
	if len(vs) == 0 {
		return BoundingBox{}
	}
	min, max := vs[0], vs[0]
	for _, v := range vs[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return BoundingBox{Min: min, Max: max}
}
