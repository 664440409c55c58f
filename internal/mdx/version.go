package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseVERS reads the single u32 format version.
func parseVERS(r *bytereader.Reader, m *Model) error {
	v, err := r.ReadU32()
	if err != nil {
		return &ErrUnexpectedEOF{Position: r.Position(), Context: "VERS"}
	}
	m.Version = v
	return nil
}

// parseMODL reads the fixed-layout ModelInfo: a 336-byte name, a skipped
// animation-file-name slot, an extent, and blend_time.
func parseMODL(r *bytereader.Reader, m *Model) error {
	name, err := r.ReadString(336)
	if err != nil {
		return &ErrUnexpectedEOF{Position: r.Position(), Context: "MODL name"}
	}
	if _, err := r.ReadU32(); err != nil { // animation file name slot, unused
		return &ErrUnexpectedEOF{Position: r.Position(), Context: "MODL animation file slot"}
	}
	extent, err := r.ReadExtent()
	if err != nil {
		return &ErrUnexpectedEOF{Position: r.Position(), Context: "MODL extent"}
	}
	blendTime, err := r.ReadU32()
	if err != nil {
		return &ErrUnexpectedEOF{Position: r.Position(), Context: "MODL blend_time"}
	}

	m.Info.Name = name
	min, max := extent.Min, extent.Max
	m.Info.MinExtent = &min
	m.Info.MaxExtent = &max
	m.Info.BoundsRadius = extent.BoundsRadius
	m.Info.BlendTime = blendTime
	return nil
}
