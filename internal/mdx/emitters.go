package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parsePREM iterates legacy particle emitters: a Node plus emission
// rate, gravity, emission cone angles, a particle texture path, life
// span, and initial velocity.
func parsePREM(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		node, err := parseNode(r, m)
		if err != nil {
			return err
		}
		emissionRate, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PREM emission_rate"}
		}
		gravity, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PREM gravity"}
		}
		longitude, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PREM longitude"}
		}
		latitude, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PREM latitude"}
		}
		particlePath, err := r.ReadRightAlignedString(256)
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PREM particle_path"}
		}
		lifeSpan, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PREM life_span"}
		}
		initialVelocity, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PREM initial_velocity"}
		}

		m.Emitters = append(m.Emitters, &ParticleEmitter{
			Node:            node,
			EmissionRate:    emissionRate,
			Gravity:         gravity,
			Longitude:       longitude,
			Latitude:        latitude,
			ParticlePath:    particlePath,
			LifeSpan:        lifeSpan,
			InitialVelocity: initialVelocity,
		})
	}
	return nil
}

// parsePRE2 iterates the richer particle-emitter-v2 records: a Node
// plus speed, variation, emission cone, size, and texture parameters.
func parsePRE2(r *bytereader.Reader, m *Model, end int64) error {
	for r.Position() < end {
		node, err := parseNode(r, m)
		if err != nil {
			return err
		}
		speed, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PRE2 speed"}
		}
		variation, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PRE2 variation"}
		}
		latitude, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PRE2 latitude"}
		}
		gravity, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PRE2 gravity"}
		}
		lifeSpan, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PRE2 life_span"}
		}
		emissionRate, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PRE2 emission_rate"}
		}
		width, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PRE2 width"}
		}
		length, err := r.ReadF32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PRE2 length"}
		}
		filterMode, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PRE2 filter_mode"}
		}
		textureID, err := r.ReadU32()
		if err != nil {
			return &ErrUnexpectedEOF{Position: r.Position(), Context: "PRE2 texture_id"}
		}

		m.EmittersV2 = append(m.EmittersV2, &ParticleEmitterV2{
			Node:         node,
			Speed:        speed,
			Variation:    variation,
			Latitude:     latitude,
			Gravity:      gravity,
			LifeSpan:     lifeSpan,
			EmissionRate: emissionRate,
			Width:        width,
			Length:       length,
			FilterMode:   filterMode,
			TextureID:    textureID,
		})
	}
	return nil
}
