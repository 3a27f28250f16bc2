package body

import (
	"github.com/flrdv/reqcore/config"
	"github.com/indigo-web/chunkedbody"
)

// NewChunkedParser builds the wrapped chunked transfer-coding decoder,
// bounding a single chunk's declared size to cfg.Body.MaxChunkSize - the
// 2^30-1 ceiling the source encoded into its top two state bits, kept here
// as an explicit, tunable Config field instead (SPEC_FULL.md §9).
func NewChunkedParser(cfg *config.Config) *chunkedbody.Parser {
	settings := chunkedbody.DefaultSettings()
	settings.MaxChunkSize = uint(cfg.Body.MaxChunkSize)

	return chunkedbody.NewParser(settings)
}
