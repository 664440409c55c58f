// Package mdx parses the Warcraft III MDX binary model format: a chunked,
// length-prefixed container holding geometry, skeletal hierarchy,
// animation sequences, materials, textures, collision primitives,
// emitters, cameras, and lights.
//
// The format is untyped on the wire and mixes inclusive and exclusive
// chunk size conventions; see framer.go for the framing discipline this
// package centralizes to avoid desynchronising the reader.
package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// Vec3 and Vec2 are re-exported from bytereader so callers of this
// package never need to import it directly.
type Vec3 = bytereader.Vec3
type Vec2 = bytereader.Vec2

// BoundingBox is an axis-aligned box, derived for each geoset from its
// vertex list.
type BoundingBox struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// Model is the fully-typed document produced by Parse. It is constructed
// empty, mutated only by the chunk parsers in order of appearance, and
// finalised by the post-pass (see postpass.go) before being handed back
// to the caller as an immutable value.
type Model struct {
	Version   uint32     `json:"version"`
	Info      ModelInfo  `json:"info"`
	Sequences []Sequence `json:"sequences"`
	// GlobalSequences holds looping animation durations in milliseconds,
	// referenced by index from animation tracks this package does not
	// decode.
	GlobalSequences []uint32             `json:"global_sequences"`
	Textures        []Texture            `json:"textures"`
	Materials       []Material           `json:"materials"`
	Geosets         []*Geoset            `json:"geosets"`
	GeosetAnims     []GeosetAnim         `json:"geoset_anims"`
	Bones           []*Bone              `json:"bones"`
	Helpers         []*Helper            `json:"helpers"`
	Attachments     []*Attachment        `json:"attachments"`
	Events          []*EventObject       `json:"events"`
	Collisions      []*CollisionShape    `json:"collision_shapes"`
	Lights          []*Light             `json:"lights"`
	Emitters        []*ParticleEmitter   `json:"particle_emitters"`
	EmittersV2      []*ParticleEmitterV2 `json:"particle_emitters2"`
	Ribbons         []*RibbonEmitter     `json:"ribbon_emitters"`
	Cameras         []Camera             `json:"cameras"`
	TextureAnims    []TextureAnim        `json:"texture_anims"`

	// PivotPoints is the raw PIVT list, one Vec3 per object_id, bound to
	// Nodes by the post-pass.
	PivotPoints []Vec3 `json:"pivot_points"`

	// Nodes is the sparse node table: nodes[object_id] holds the node
	// parsed with that object_id, or nil for a gap. It is grown lazily
	// as Bone/Helper/Attachment/.../CollisionShape records are parsed.
	Nodes []*Node `json:"nodes"`
}

// ModelInfo carries the model's display name, default camera bounds, and
// blend time, from the MODL chunk.
type ModelInfo struct {
	Name         string  `json:"name"`
	MinExtent    *Vec3   `json:"min_extent,omitempty"`
	MaxExtent    *Vec3   `json:"max_extent,omitempty"`
	BoundsRadius float32 `json:"bounds_radius"`
	BlendTime    uint32  `json:"blend_time"`
}

// Sequence is a named animation interval from the SEQS chunk.
type Sequence struct {
	Name          string  `json:"name"`
	IntervalStart uint32  `json:"interval_start"`
	IntervalEnd   uint32  `json:"interval_end"`
	MoveSpeed     float32 `json:"move_speed"`
	NonLooping    bool    `json:"non_looping"`
	Rarity        float32 `json:"rarity"`
	BoundsRadius  float32 `json:"bounds_radius"`
	MinExtent     Vec3    `json:"min_extent"`
	MaxExtent     Vec3    `json:"max_extent"`
}

// Texture is one 268-byte TEXS record.
type Texture struct {
	ReplaceableID uint32 `json:"replaceable_id"`
	Path          string `json:"path"`
	Flags         uint32 `json:"flags"`
}

// Layer is one rendering pass within a Material.
type Layer struct {
	FilterMode uint32  `json:"filter_mode"`
	Shading    uint32  `json:"shading"`
	TextureID  *int32  `json:"texture_id,omitempty"`
	CoordID    uint32  `json:"coord_id"`
	Alpha      float32 `json:"alpha"`
}

// Material is an ordered list of Layers from one MTLS record.
type Material struct {
	PriorityPlane uint32  `json:"priority_plane"`
	RenderMode    uint32  `json:"render_mode"`
	Layers        []Layer `json:"layers"`
}

// UVSet is one set of per-vertex texture coordinates.
type UVSet struct {
	Coords []Vec2 `json:"coords"`
}

// Face is a triangle of three indices into the enclosing Geoset's
// Vertices.
type Face struct {
	Indices [3]uint16 `json:"indices"`
}

// Geoset is a self-contained mesh: vertices, normals, UV sets, faces,
// per-vertex group indices, a material reference, and a derived AABB.
type Geoset struct {
	Vertices       []Vec3      `json:"vertices"`
	Normals        []Vec3      `json:"normals"`
	UVSets         []UVSet     `json:"uv_sets"`
	Faces          []Face      `json:"faces"`
	VertexGroups   []uint8     `json:"vertex_groups"`
	MaterialID     uint32      `json:"material_id"`
	SelectionGroup uint32      `json:"selection_group"`
	Bounds         BoundingBox `json:"bounds"`
}

// GeosetAnim carries per-geoset animation overrides (alpha, color,
// replacement flags) from one GEOA record.
type GeosetAnim struct {
	Alpha    float32 `json:"alpha"`
	Flags    uint32  `json:"flags"`
	Color    Vec3    `json:"color"`
	GeosetID *int32  `json:"geoset_id,omitempty"`
}

// Node is the shared record embedded by Bone, Helper, Attachment,
// EventObject, CollisionShape, Light, ParticleEmitter,
// ParticleEmitterV2, and RibbonEmitter. Those record types hold a Node
// by value rather than extending it.
type Node struct {
	Name         string `json:"name"`
	ObjectID     *int32 `json:"object_id,omitempty"`
	Parent       *int32 `json:"parent,omitempty"`
	Flags        uint32 `json:"flags"`
	PivotPoint   *Vec3  `json:"pivot_point,omitempty"`
	GeosetID     *int32 `json:"geoset_id,omitempty"`
	GeosetAnimID *int32 `json:"geoset_anim_id,omitempty"`
}

// Bone is a Node plus its optional geoset/geoset-anim bindings, from a
// BONE record.
type Bone struct {
	Node Node `json:"node"`
}

// Helper is a plain Node with no extra payload, from a HELP record.
type Helper struct {
	Node Node `json:"node"`
}

// Attachment anchors an attachment point (e.g. a weapon hardpoint) to a
// Node, from an ATCH record.
type Attachment struct {
	Node         Node   `json:"node"`
	Path         string `json:"path"`
	AttachmentID uint32 `json:"attachment_id"`
}

// EventObject is a Node that fires at specific animation frames, from an
// EVTS record.
type EventObject struct {
	Node        Node     `json:"node"`
	GlobalSeqID uint32   `json:"global_sequence_id"`
	FrameStamps []uint32 `json:"frame_stamps"`
}

// CollisionKind enumerates the CLID shape discriminator.
type CollisionKind uint32

const (
	CollisionBox      CollisionKind = 0
	CollisionPlane    CollisionKind = 1
	CollisionSphere   CollisionKind = 2
	CollisionCylinder CollisionKind = 3
)

// CollisionShape is a Node plus its raw shape floats, from a CLID record.
// Plane and Cylinder carry 3 floats each; Box is 6 floats (two corners);
// Sphere is 3 floats plus a radius.
type CollisionShape struct {
	Node   Node          `json:"node"`
	Kind   CollisionKind `json:"kind"`
	Floats []float32     `json:"floats"`
	Radius *float32      `json:"radius,omitempty"`
}

// Light is a Node plus point/spot-light parameters, from a LITE record.
type Light struct {
	Node             Node    `json:"node"`
	Kind             uint32  `json:"kind"`
	AttenuationStart float32 `json:"attenuation_start"`
	AttenuationEnd   float32 `json:"attenuation_end"`
	Color            Vec3    `json:"color"`
	Intensity        float32 `json:"intensity"`
	AmbientColor     Vec3    `json:"ambient_color"`
	AmbientIntensity float32 `json:"ambient_intensity"`
}

// ParticleEmitter is a Node plus legacy (PREM) particle-emitter
// parameters.
type ParticleEmitter struct {
	Node            Node    `json:"node"`
	EmissionRate    float32 `json:"emission_rate"`
	Gravity         float32 `json:"gravity"`
	Longitude       float32 `json:"longitude"`
	Latitude        float32 `json:"latitude"`
	ParticlePath    string  `json:"particle_path"`
	LifeSpan        float32 `json:"life_span"`
	InitialVelocity float32 `json:"initial_velocity"`
}

// ParticleEmitterV2 is a Node plus the richer (PRE2) particle-emitter
// parameters.
type ParticleEmitterV2 struct {
	Node         Node    `json:"node"`
	Speed        float32 `json:"speed"`
	Variation    float32 `json:"variation"`
	Latitude     float32 `json:"latitude"`
	Gravity      float32 `json:"gravity"`
	LifeSpan     float32 `json:"life_span"`
	EmissionRate float32 `json:"emission_rate"`
	Width        float32 `json:"width"`
	Length       float32 `json:"length"`
	FilterMode   uint32  `json:"filter_mode"`
	TextureID    uint32  `json:"texture_id"`
}

// RibbonEmitter is a Node plus ribbon-trail parameters, from a RIBB
// record.
type RibbonEmitter struct {
	Node         Node    `json:"node"`
	HeightAbove  float32 `json:"height_above"`
	HeightBelow  float32 `json:"height_below"`
	Alpha        float32 `json:"alpha"`
	Color        Vec3    `json:"color"`
	LifeSpan     float32 `json:"life_span"`
	TextureSlot  uint32  `json:"texture_slot"`
	EmissionRate uint32  `json:"emission_rate"`
	Rows         uint32  `json:"rows"`
	Columns      uint32  `json:"columns"`
	MaterialID   uint32  `json:"material_id"`
}

// Camera is a named view with a position, target, and field of view.
type Camera struct {
	Name        string  `json:"name"`
	Position    Vec3    `json:"position"`
	FieldOfView float32 `json:"field_of_view"`
	FarClip     float32 `json:"far_clip"`
	NearClip    float32 `json:"near_clip"`
	Target      Vec3    `json:"target_position"`
}

// TextureAnim is the element type of Model.TextureAnims. It has no
// fields: parseTXAN absorbs TXAN chunks without decoding them, so no
// TextureAnim values are produced and TextureAnims stays empty.
type TextureAnim struct{}
