package mdx

import "strconv"

// ValidateModel checks the invariants Parse does not already enforce
// inline: sequence interval ordering and node-table self-consistency.
// It is opt-in, so callers decide when to pay for it.
func ValidateModel(m *Model) error {
	for i, seq := range m.Sequences {
		if seq.IntervalEnd < seq.IntervalStart {
			return &ErrCorrupt{Reason: sequenceOrderReason(i)}
		}
	}
	for idx, node := range m.Nodes {
		if node == nil {
			continue
		}
		if node.ObjectID == nil || int(*node.ObjectID) != idx {
			return &ErrCorrupt{Reason: "node table index does not match its object_id"}
		}
	}
	return nil
}

func sequenceOrderReason(index int) string {
	return "sequence " + strconv.Itoa(index) + " has interval_end before interval_start"
}
