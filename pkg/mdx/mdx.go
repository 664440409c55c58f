// Package mdx provides a clean public API for parsing Warcraft III MDX
// model files.
package mdx

import (
	"encoding/json"

	"github.com/wc3tools/mdx/internal/mdx"
)

// Model is the fully-typed document produced by a successful parse. It
// is a direct alias of the internal representation: the wire format
// maps onto one natural Go shape, so there is no separate public/
// internal struct pair to keep in sync, unlike richer domains where the
// public surface elides internal bookkeeping.
type Model = mdx.Model

// Re-exported leaf types, so callers never need to import the internal
// package directly.
type (
	Vec3              = mdx.Vec3
	Vec2              = mdx.Vec2
	BoundingBox       = mdx.BoundingBox
	ModelInfo         = mdx.ModelInfo
	Sequence          = mdx.Sequence
	Texture           = mdx.Texture
	Layer             = mdx.Layer
	Material          = mdx.Material
	UVSet             = mdx.UVSet
	Face              = mdx.Face
	Geoset            = mdx.Geoset
	GeosetAnim        = mdx.GeosetAnim
	Node              = mdx.Node
	Bone              = mdx.Bone
	Helper            = mdx.Helper
	Attachment        = mdx.Attachment
	EventObject       = mdx.EventObject
	CollisionKind     = mdx.CollisionKind
	CollisionShape    = mdx.CollisionShape
	Light             = mdx.Light
	ParticleEmitter   = mdx.ParticleEmitter
	ParticleEmitterV2 = mdx.ParticleEmitterV2
	RibbonEmitter     = mdx.RibbonEmitter
	Camera            = mdx.Camera
	TextureAnim       = mdx.TextureAnim
)

const (
	CollisionBox      = mdx.CollisionBox
	CollisionPlane    = mdx.CollisionPlane
	CollisionSphere   = mdx.CollisionSphere
	CollisionCylinder = mdx.CollisionCylinder
)

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// ValidateFaceIndices checks that every face index is in-range for
	// its geoset's vertex list while parsing, raising an error on
	// violation instead of producing a Model with a dangling index.
	ValidateFaceIndices bool

	// SkipUnknownSubChunks tolerates an unrecognised GEOS sub-tag by
	// ending that geoset's sub-loop rather than failing the parse.
	SkipUnknownSubChunks bool
}

// DefaultParseOptions returns the options a normal parse should use.
func DefaultParseOptions() ParseOptions {
	opts := mdx.DefaultOptions()
	return ParseOptions{
		ValidateFaceIndices:  opts.ValidateFaceIndices,
		SkipUnknownSubChunks: opts.SkipUnknownSubChunks,
	}
}

// Parser parses MDX model files.
//
// Create a parser with NewParser and use Parse or ParseWithOptions to
// read a buffer.
type Parser interface {
	// Parse decodes a complete MDX file buffer using DefaultParseOptions.
	Parse(data []byte) (*Model, error)

	// ParseWithOptions decodes a complete MDX file buffer with custom
	// options.
	ParseWithOptions(data []byte, opts ParseOptions) (*Model, error)
}

// NewParser creates a new MDX parser with default settings.
//
// Example:
//
//	parser := mdx.NewParser()
//	model, err := parser.Parse(data)
func NewParser() Parser {
	return &defaultParser{}
}

type defaultParser struct{}

func (p *defaultParser) Parse(data []byte) (*Model, error) {
	return p.ParseWithOptions(data, DefaultParseOptions())
}

func (p *defaultParser) ParseWithOptions(data []byte, opts ParseOptions) (*Model, error) {
	internalOpts := mdx.Options{
		ValidateFaceIndices:  opts.ValidateFaceIndices,
		SkipUnknownSubChunks: opts.SkipUnknownSubChunks,
	}
	return mdx.Parse(data, internalOpts)
}

// Validate checks model-level invariants that Parse does not already
// enforce inline (sequence interval ordering, node-table
// self-consistency).
func Validate(m *Model) error {
	return mdx.ValidateModel(m)
}

// ToJSON renders a Model with snake_case field names: the model's
// struct tags already carry that shape, so this is a thin convenience
// over encoding/json.
func ToJSON(m *Model) ([]byte, error) {
	return json.Marshal(m)
}
