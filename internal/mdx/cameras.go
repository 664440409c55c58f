package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseCAMS iterates cameras: no embedded Node, just a named view with
// a position, clip/FOV parameters, and a target position. Each record
// leads with an inclusive u32 size covering its optional animation
// tracks, which the final reseek skips.
func parseCAMS(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		sizeFieldPos := r.Position()
		camSize, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "CAMS size"}
		}
		name, err := r.ReadString(80)
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "CAMS name"}
		}
		position, err := r.ReadVec3()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "CAMS position"}
		}
		fov, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "CAMS field_of_view"}
		}
		farClip, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "CAMS far_clip"}
		}
		nearClip, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "CAMS near_clip"}
		}
		target, err := r.ReadVec3()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "CAMS target"}
		}

		seekToSizeEnd(r, sizeFieldPos, int64(camSize))

		m.Cameras = append(m.Cameras, Camera{
			Name:        name,
			Position:    position,
			FieldOfView: fov,
			FarClip:     farClip,
			NearClip:    nearClip,
			Target:      target,
		})
	}
	return nil
}
