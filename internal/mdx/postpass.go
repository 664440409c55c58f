package mdx

// bindPivots assigns each PIVT entry to the node at the same index,
// for every i < min(len(PivotPoints), len(Nodes)) where Nodes[i] is
// present. A mismatched pivot/node count is tolerated: indices beyond
// either list are left unassigned rather than raising an error, to
// accept in-the-wild files.
func bindPivots(m *Model) error {
	n := len(m.PivotPoints)
	if len(m.Nodes) < n {
		n = len(m.Nodes)
	}
	for i := 0; i < n; i++ {
		node := m.Nodes[i]
		if node == nil {
			continue
		}
		pivot := m.PivotPoints[i]
		node.PivotPoint = &pivot
	}
	return nil
}
