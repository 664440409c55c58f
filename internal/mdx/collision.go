package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseCLID iterates collision shapes: a Node plus a shape discriminator
// and its raw floats. Plane and Cylinder shapes carry 3 floats each,
// matching observed files; official documentation does not pin this down.
func parseCLID(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		node, err := parseNode(r, m)
		if err != nil {
			return err
		}
		kindRaw, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "CLID shape"}
		}
		kind := CollisionKind(kindRaw)

		shape := &CollisionShape{Node: node, Kind: kind}
		switch kind {
		case CollisionBox:
			floats, err := readFloats(r, 6, "CLID box")
			if err != nil {
				return err
			}
			shape.Floats = floats
		case CollisionPlane:
			floats, err := readFloats(r, 3, "CLID plane")
			if err != nil {
				return err
			}
			shape.Floats = floats
		case CollisionSphere:
			floats, err := readFloats(r, 3, "CLID sphere")
			if err != nil {
				return err
			}
			radius, err := r.ReadF32()
			if err != nil {
				return &ErrUnexpectedEOF{Position: r.Position(), Context: "CLID sphere radius"}
			}
			shape.Floats = floats
			shape.Radius = &radius
		case CollisionCylinder:
			floats, err := readFloats(r, 3, "CLID cylinder")
			if err != nil {
				return err
			}
			shape.Floats = floats
		default:
			return &ErrCorrupt{Reason: "unknown CLID shape discriminator"}
		}

		m.Collisions = append(m.Collisions, shape)
	}
	return nil
}

func readFloats(r *bytereader.Reader, n int, context string) ([]float32, error) {
	floats := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := r.ReadF32()
		if err != nil {
			return nil, &ErrUnexpectedEOF{Position: r.Position(), Context: context}
		}
		floats[i] = v
	}
	return floats, nil
}
