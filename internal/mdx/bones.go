package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseBONE iterates bones: a Node plus optional geoset/geoset-anim
// bindings, both −1-sentinel i32s.
func parseBONE(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		node, err := parseNode(r, m)
		if err != nil {
			return err
		}
		geosetID, err := r.ReadI32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "BONE geoset_id"}
		}
		geosetAnimID, err := r.ReadI32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "BONE geoset_anim_id"}
		}
		if geosetID >= 0 {
			node.GeosetID = &geosetID
		}
		if geosetAnimID >= 0 {
			node.GeosetAnimID = &geosetAnimID
		}
		m.Bones = append(m.Bones, &Bone{Node: node})
	}
	return nil
}

// parseHELP iterates helpers: a plain Node with no extra payload.
func parseHELP(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		node, err := parseNode(r, m)
		if err != nil {
			return err
		}
		m.Helpers = append(m.Helpers, &Helper{Node: node})
	}
	return nil
}

// parseATCH iterates attachments: a skipped size, a Node, a 256-byte
// path, a skipped u32, and an attachment_id.
func parseATCH(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		if _, err := r.ReadU32(); err != nil { // attachment_size, skipped
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "ATCH size"}
		}
		node, err := parseNode(r, m)
		if err != nil {
			return err
		}
		path, err := r.ReadRightAlignedString(256)
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "ATCH path"}
		}
		if _, err := r.ReadU32(); err != nil { // skipped
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "ATCH reserved"}
		}
		attachmentID, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "ATCH attachment_id"}
		}
		m.Attachments = append(m.Attachments, &Attachment{
			Node:         node,
			Path:         path,
			AttachmentID: attachmentID,
		})
	}
	return nil
}
