package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseLITE iterates lights: a Node plus point/spot-light attenuation,
// color, and ambient parameters.
func parseLITE(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		node, err := parseNode(r, m)
		if err != nil {
			return err
		}
		kind, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "LITE kind"}
		}
		attenStart, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "LITE attenuation_start"}
		}
		attenEnd, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "LITE attenuation_end"}
		}
		color, err := r.ReadVec3()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "LITE color"}
		}
		intensity, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "LITE intensity"}
		}
		ambientColor, err := r.ReadVec3()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "LITE ambient_color"}
		}
		ambientIntensity, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "LITE ambient_intensity"}
		}

		m.Lights = append(m.Lights, &Light{
			Node:             node,
			Kind:             kind,
			AttenuationStart: attenStart,
			AttenuationEnd:   attenEnd,
			Color:            color,
			Intensity:        intensity,
			AmbientColor:     ambientColor,
			AmbientIntensity: ambientIntensity,
		})
	}
	return nil
}
