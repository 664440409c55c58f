package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseEVTS iterates event objects: a Node, a required KEVT keyword,
// a frame-stamp count, a global_seq_id (kept in GlobalSeqID), and the
// list of frame stamps.
func parseEVTS(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		node, err := parseNode(r, m)
		if err != nil {
			return err
		}
		kw, err := r.ReadKeyword()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "EVTS KEVT"}
		}
		if kw != "KEVT" {
			return &ErrBadSubChunkTag{Expected: "KEVT", Got: kw, Position: r.Position()}
		}
		count, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "EVTS track_count"}
		}
		globalSeqID, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "EVTS global_seq_id"}
		}

		event := &EventObject{Node: node, GlobalSeqID: globalSeqID}
		for i := uint32(0); i < count; i++ {
			stamp, err := r.ReadU32()
			if err != nil {
				return &ErrUnexpectedEOF{Position: r.Position(), Context: "EVTS frame stamp"}
			}
			event.FrameStamps = append(event.FrameStamps, stamp)
		}
		m.Events = append(m.Events, event)
	}
	return nil
}
