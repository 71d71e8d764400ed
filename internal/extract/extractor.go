package extract

import (
	"fmt"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/growth"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/taxonomy"
)

// Extractor runs trial and session extraction against one taxonomy and one
// growth config. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	tax *taxonomy.Taxonomy
	cfg growth.Config
}

// New builds an Extractor. The growth config is validated here so malformed
// weights fail at construction rather than mid-extraction.
func New(tax *taxonomy.Taxonomy, cfg growth.Config) (*Extractor, error) {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new extractor: %w", err)
	}
	return &Extractor{tax: tax, cfg: cfg}, nil
}

// Config returns the active growth config.
func (e *Extractor) Config() growth.Config {
	return e.cfg
}

// Taxonomy returns the taxonomy the extractor detects against.
func (e *Extractor) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}
