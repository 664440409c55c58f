package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseRIBB iterates ribbon emitters: a Node plus trail geometry and
// material parameters.
func parseRIBB(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		node, err := parseNode(r, m)
		if err != nil {
			return err
		}
		heightAbove, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "RIBB height_above"}
		}
		heightBelow, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "RIBB height_below"}
		}
		alpha, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "RIBB alpha"}
		}
		color, err := r.ReadVec3()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "RIBB color"}
		}
		lifeSpan, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "RIBB life_span"}
		}
		textureSlot, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "RIBB texture_slot"}
		}
		emissionRate, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "RIBB emission_rate"}
		}
		rows, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "RIBB rows"}
		}
		columns, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "RIBB columns"}
		}
		materialID, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "RIBB material_id"}
		}

		m.Ribbons = append(m.Ribbons, &RibbonEmitter{
			Node:         node,
			HeightAbove:  heightAbove,
			HeightBelow:  heightBelow,
			Alpha:        alpha,
			Color:        color,
			LifeSpan:     lifeSpan,
			TextureSlot:  textureSlot,
			EmissionRate: emissionRate,
			Rows:         rows,
			Columns:      columns,
			MaterialID:   materialID,
		})
	}
	return nil
}
