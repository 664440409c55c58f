package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseSEQS iterates fixed 132-byte sequence records until the cursor
// reaches end (total bytes, not count-prefixed).
func parseSEQS(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		name, err := r.ReadString(80)
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "SEQS name"}
		}
		start, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "SEQS interval_start"}
		}
		stop, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "SEQS interval_end"}
		}
		moveSpeed, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "SEQS move_speed"}
		}
		nonLooping, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "SEQS non_looping"}
		}
		rarity, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "SEQS rarity"}
		}
		if _, err := r.ReadU32(); err != nil { // skipped u32
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "SEQS reserved"}
		}
		extent, err := r.ReadExtent()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "SEQS extent"}
		}

		m.Sequences = append(m.Sequences, Sequence{
			Name:          name,
			IntervalStart: start,
			IntervalEnd:   stop,
			MoveSpeed:     moveSpeed,
			NonLooping:    nonLooping != 0,
			Rarity:        rarity,
			BoundsRadius:  extent.BoundsRadius,
			MinExtent:     extent.Min,
			MaxExtent:     extent.Max,
		})
	}
	return nil
}

// parseGLBS reads size/4 global sequence durations.
func parseGLBS(r *bytereader.Reader, m *Model, size int64) error {
	count := size / 4
	for i := int64(0); i < count; i++ {
		v, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "GLBS"}
		}
		m.GlobalSequences = append(m.GlobalSequences, v)
	}
	return nil
}
