package driving

import (
	"context"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// FlexibilityService reports how freely nouns and adjectives change order.
type FlexibilityService interface {
	// Compute counts orders per lemma, writes the noun, adjective and
	// flexible-pair artifacts and returns them.
	Compute(ctx context.Context, cfg domain.RunConfig, datasetPath string) (*domain.FlexibilityReport, error)
}

// DescribeService produces descriptive statistics of a dataset.
type DescribeService interface {
	// Describe summarises syllable counts and constraint violations over
	// the unique adjective and noun forms of a dataset.
	Describe(ctx context.Context, cfg domain.RunConfig, datasetPath string) (*domain.Description, error)
}
