package mdx

import "github.com/wc3tools/mdx/internal/bytereader"

// parseTXAN absorbs the TXAN chunk without decoding it. TXAN carries
// per-layer UV animation tracks; per the Non-goals, track interpolation
// is out of scope and absorbing the declared size is sufficient. The
// framer's unconditional reseek after dispatch does the actual skip.
func parseTXAN(r *bytereader.Reader, m *Model, end int64) error {
	return nil
}
