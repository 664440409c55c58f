package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// textureRecordSize is the fixed wire size of one TEXS slot: replaceable_id
// (4) + path (256) + unknown (4) + flags (4).
const textureRecordSize = 4 + 256 + 4 + 4

// parseTEXS reads size/268 fixed texture records.
func parseTEXS(r *bytereader.Reader, m *Model, size int64) error {
	count := size / textureRecordSize
	for i := int64(0); i < count; i++ {
		replaceableID, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "TEXS replaceable_id"}
		}
		path, err := r.ReadRightAlignedString(256)
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "TEXS path"}
		}
		if _, err := r.ReadU32(); err != nil { // unknown
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "TEXS reserved"}
		}
		flags, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "TEXS flags"}
		}

		m.Textures = append(m.Textures, Texture{
			ReplaceableID: replaceableID,
			Path:          path,
			Flags:         flags,
		})
	}
	return nil
}
