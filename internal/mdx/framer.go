package mdx

import (
	"github.com/wc3tools/mdx/internal/bytereader"
)

// Options configures parsing behavior. It mirrors the options shape of
// the public package but stays internal since callers use pkg/mdx.
type Options struct {
	// ValidateFaceIndices checks that every face index is in-range for
	// its geoset's vertex list while parsing GEOS chunks, raising
	// ErrCorrupt on violation. Default: true.
	ValidateFaceIndices bool

	// SkipUnknownSubChunks tolerates an unrecognised GEOS sub-tag by
	// ending that geoset's sub-loop, rather than treating it as fatal.
	// The format evolves by adding tags, so in-the-wild files need this;
	// setting it to false makes an unknown sub-tag fatal
	// (ErrBadSubChunkTag), which is useful for debugging. Default: true.
	SkipUnknownSubChunks bool
}

// DefaultOptions returns the options a normal parse should use.
func DefaultOptions() Options {
	return Options{
		ValidateFaceIndices:  true,
		SkipUnknownSubChunks: true,
	}
}

// magic is the required 4-byte header.
const magic = "MDLX"

// Parse decodes a complete MDX file buffer into a Model. It returns an
// error at the first malformed chunk; there is no partial recovery.
func Parse(data []byte, opts Options) (*Model, error) {
	r := bytereader.New(data)

	hdr, err := r.ReadExact(4)
	if err != nil || string(hdr) != magic {
		var got [4]byte
		copy(got[:], hdr)
		return nil, &ErrBadMagic{Got: got}
	}

	m := &Model{
		Version: 800,
		Info:    ModelInfo{BlendTime: 150},
	}

	for {
		tag, err := r.ReadKeyword()
		if err != nil {
			// A read failure at exactly this position (not mid-chunk)
			// terminates normal parsing: we are at end of input.
			break
		}
		size, err := r.ReadU32()
		if err != nil {
			return nil, &ErrUnexpectedEOF{Position: r.Position(), Context: "chunk size for " + tag}
		}

		bodyStart := r.Position()
		if err := dispatchChunk(r, m, tag, int64(size), opts); err != nil {
			return nil, err
		}
		// Ordinary (non-inclusive) chunks always land exactly at
		// bodyStart+size; chunk handlers for MTLS/GEOS manage their own
		// inclusive reseeking internally and leave the cursor already
		// correctly positioned, so this is a no-op for them.
		r.SeekAbs(bodyStart + int64(size))
	}

	if err := bindPivots(m); err != nil {
		return nil, err
	}

	return m, nil
}

// dispatchChunk routes one top-level chunk to its typed parser. Unknown
// tags are tolerated (the format evolves by adding tags) and skipped by
// their declared size via the caller's unconditional reseek.
func dispatchChunk(r *bytereader.Reader, m *Model, tag string, size int64, opts Options) error {
	end := r.Position() + size
	switch tag {
	case "VERS":
		return parseVERS(r, m)
	case "MODL":
		return parseMODL(r, m)
	case "SEQS":
		return parseSEQS(r, m, end)
	case "GLBS":
		return parseGLBS(r, m, size)
	case "TEXS":
		return parseTEXS(r, m, size)
	case "MTLS":
		return parseMTLS(r, m, end)
	case "GEOS":
		return parseGEOS(r, m, end, opts)
	case "GEOA":
		return parseGEOA(r, m, end)
	case "BONE":
		return parseBONE(r, m, end)
	case "HELP":
		return parseHELP(r, m, end)
	case "ATCH":
		return parseATCH(r, m, end)
	case "PIVT":
		return parsePIVT(r, m, size)
	case "EVTS":
		return parseEVTS(r, m, end)
	case "CLID":
		return parseCLID(r, m, end)
	case "CAMS":
		return parseCAMS(r, m, end)
	case "LITE":
		return parseLITE(r, m, end)
	case "PREM":
		return parsePREM(r, m, end)
	case "PRE2":
		return parsePRE2(r, m, end)
	case "RIBB":
		return parseRIBB(r, m, end)
	case "TXAN":
		return parseTXAN(r, m, end)
	default:
		// Unrecognised tag: the enclosing Parse loop's unconditional
		// SeekAbs(bodyStart+size) after this call handles the skip.
		return nil
	}
}

// seekToSizeEnd centralises the inclusive-size reseek discipline: the
// caller records sizeFieldPos before reading the inclusive size field,
// then calls this to land exactly at sizeFieldPos+size. This is the one
// place MTLS/GEOS/Layer/Node framing performs the reseek.
func seekToSizeEnd(r *bytereader.Reader, sizeFieldPos int64, size int64) {
	r.SeekAbs(sizeFieldPos + size)
}
