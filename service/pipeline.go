package service

import (
	"context"
	"fmt"
)

// Generator is the boundary to the generative text service: one system
// instruction, one compiled prompt in, free-form text out. Implementations
// must honor ctx cancellation and return dto.ErrGenerationUnavailable for
// transport failures and empty replies.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// generateStructured runs one instance of the extraction/explanation
// pipeline: call the generation service, recover a JSON object from its
// output, and map the object into the target schema. Both pipeline
// instances (document structuring and why-analysis) go through here so the
// recovery logic exists exactly once.
func generateStructured[T any](
	ctx context.Context,
	gen Generator,
	systemPrompt, userPrompt string,
	mapResult func(map[string]any) (T, error),
) (T, error) {
	var zero T

	content, err := gen.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return zero, fmt.Errorf("generation call failed: %w", err)
	}

	obj, err := RecoverJSON(content)
	if err != nil {
		return zero, err
	}

	return mapResult(obj)
}
