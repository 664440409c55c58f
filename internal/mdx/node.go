package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseNode reads the shared Node record embedded by bone/helper/
// attachment/event/collision/light/emitter records, then registers it
// in the sparse node table when it carries an object_id. Callers embed
// the returned value rather than a pointer to it.
func parseNode(r *bytereader.Reader, m *Model) (Node, error) {
	recordStart := r.Position()
	nodeSize, err := r.ReadU32()
	if err != nil {
		return Node{}, &ErrUnexpectedEOF{Position: r.Position(), Context: "node size"}
	}
	name, err := r.ReadString(80)
	if err != nil {
		return Node{}, &ErrUnexpectedEOF{Position: r.Position(), Context: "node name"}
	}
	objectID, err := r.ReadI32()
	if err != nil {
		return Node{}, &ErrUnexpectedEOF{Position: r.Position(), Context: "node object_id"}
	}
	parent, err := r.ReadI32()
	if err != nil {
		return Node{}, &ErrUnexpectedEOF{Position: r.Position(), Context: "node parent"}
	}
	flags, err := r.ReadU32()
	if err != nil {
		return Node{}, &ErrUnexpectedEOF{Position: r.Position(), Context: "node flags"}
	}

	node := Node{Name: name, Flags: flags}
	if objectID >= 0 {
		node.ObjectID = &objectID
	}
	if parent >= 0 {
		node.Parent = &parent
	}

	seekToSizeEnd(r, recordStart, int64(nodeSize))

	if node.ObjectID != nil {
		growNodeTable(m, int(*node.ObjectID))
		stored := node
		m.Nodes[*node.ObjectID] = &stored
	}
	return node, nil
}

// TrackTag names the optional animation-track sub-chunks a Node record
// may carry (translation, rotation, scaling, visibility, alpha,
// event keys). parseNode never decodes them: its inclusive size reseek
// skips straight past whichever of these are present, so this type
// exists only to give the tags a documented name.
type TrackTag string

const (
	TrackTranslation TrackTag = "KGTR"
	TrackRotation    TrackTag = "KGRT"
	TrackScaling     TrackTag = "KGSC"
	TrackVisibility  TrackTag = "KLAV"
	TrackAlpha       TrackTag = "KGAO"
	TrackEvent       TrackTag = "KEVT"
)

// growNodeTable extends m.Nodes so index idx is addressable, leaving new
// slots nil (absent), per the sparse node table design.
func growNodeTable(m *Model, idx int) {
	if idx < len(m.Nodes) {
		return
	}
	grown := make([]*Node, idx+1)
	copy(grown, m.Nodes)
	m.Nodes = grown
}
