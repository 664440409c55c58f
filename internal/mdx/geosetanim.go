package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseGEOA iterates geoset-anim records: a skipped size prefix, alpha,
// flags, a color triple, and an optional geoset_id.
func parseGEOA(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		if _, err := r.ReadU32(); err != nil { // anim_size, skipped
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "GEOA size"}
		}
		alpha, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "GEOA alpha"}
		}
		flags, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "GEOA flags"}
		}
		color, err := r.ReadVec3()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "GEOA color"}
		}
		geosetID, err := r.ReadI32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "GEOA geoset_id"}
		}

		anim := GeosetAnim{Alpha: alpha, Flags: flags, Color: color}
		if geosetID >= 0 {
			anim.GeosetID = &geosetID
		}
		m.GeosetAnims = append(m.GeosetAnims, anim)
	}
	return nil
}
