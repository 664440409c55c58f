package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parsePIVT reads size/12 raw pivot points; binding them to nodes by
// index is the post-pass's job (postpass.go), not this parser's.
func parsePIVT(r *bytereader.Reader, m *Model, size int64) error {
	count := size / 12
	for i := int64(0); i < count; i++ {
		v, err := r.ReadVec3()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PIVT"}
		}
		m.PivotPoints = append(m.PivotPoints, v)
	}
	return nil
}
