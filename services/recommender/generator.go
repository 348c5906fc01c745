package recommender

import (
	"context"
	"fmt"
	"log"

	"vibemix/blueprint"
	"vibemix/services/groq"
)

// TextBackend is the generative model edge of the generator. *groq.Client
// satisfies it; tests substitute their own.
type TextBackend interface {
	ChatCompletion(ctx context.Context, req *groq.ChatRequest) (string, error)
}

// Strategy is one rung of the generation ladder. Strategies are tried in
// order and the ladder terminates on the first success.
type Strategy interface {
	Name() string
	Generate(ctx context.Context, criteria *blueprint.Criteria, targetCount int) (*blueprint.Recommendations, error)
}

// Generator produces playlist recommendations from user criteria, working
// through an explicit ordered list of strategies: the full model prompt, a
// simplified retry, then the deterministic corpus fallback. Failure policy
// lives in the list, not in nested error handling.
type Generator struct {
	strategies []Strategy
}

// NewGenerator wires the strategy ladder. When no backend is configured the
// ladder is only the deterministic fallback.
func NewGenerator(backend TextBackend) *Generator {
	var strategies []Strategy
	if backend != nil {
		strategies = append(strategies,
			&primaryStrategy{backend: backend},
			&simplifiedStrategy{backend: backend},
		)
	}
	strategies = append(strategies, &fallbackStrategy{})
	return &Generator{strategies: strategies}
}

// Generate runs the ladder and post-processes the first successful result.
// The returned recommendations carry a non-empty Error field with zero songs
// only when every rung failed; callers must treat that as a signalled failure.
func (g *Generator) Generate(ctx context.Context, criteria *blueprint.Criteria) *blueprint.Recommendations {
	targetCount := TargetTrackCount(criteria.Length)

	for _, strategy := range g.strategies {
		recs, err := strategy.Generate(ctx, criteria, targetCount)
		if err != nil {
			log.Printf("\n[services][recommender][generator][Generate] warn - strategy %s failed: %v\n", strategy.Name(), err)
			continue
		}
		recs = PostProcess(recs, criteria.Artists, targetCount)
		if len(recs.Songs) == 0 {
			log.Printf("\n[services][recommender][generator][Generate] warn - strategy %s produced no songs\n", strategy.Name())
			continue
		}
		log.Printf("\n[services][recommender][generator][Generate] - strategy %s produced playlist %q with %d songs\n", strategy.Name(), recs.PlaylistName, len(recs.Songs))
		return recs
	}

	return &blueprint.Recommendations{
		PlaylistName: fmt.Sprintf("%s Mix for %s", genresText(criteria.Genres), criteria.Usecase),
		Error:        "Recommendation service temporarily unavailable. Please try again.",
	}
}

// primaryStrategy submits the full structured prompt and parses strictly.
type primaryStrategy struct {
	backend TextBackend
}

func (s *primaryStrategy) Name() string { return "primary" }

func (s *primaryStrategy) Generate(ctx context.Context, criteria *blueprint.Criteria, targetCount int) (*blueprint.Recommendations, error) {
	raw, err := s.backend.ChatCompletion(ctx, &groq.ChatRequest{
		Model: groq.Model,
		Messages: []groq.Message{
			{Role: "system", Content: curatorSystemPrompt},
			{Role: "user", Content: buildPrompt(criteria, targetCount)},
		},
		Temperature: 0.9,
		MaxTokens:   3000,
		TopP:        0.95,
	})
	if err != nil {
		return nil, err
	}
	return ParseRecommendations(raw, true)
}

// simplifiedStrategy retries with a stripped-down prompt and relaxed parsing.
type simplifiedStrategy struct {
	backend TextBackend
}

func (s *simplifiedStrategy) Name() string { return "simplified-retry" }

func (s *simplifiedStrategy) Generate(ctx context.Context, criteria *blueprint.Criteria, targetCount int) (*blueprint.Recommendations, error) {
	raw, err := s.backend.ChatCompletion(ctx, &groq.ChatRequest{
		Model: groq.Model,
		Messages: []groq.Message{
			{Role: "system", Content: simpleSystemPrompt},
			{Role: "user", Content: buildSimplePrompt(criteria, targetCount)},
		},
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	if err != nil {
		return nil, err
	}
	return ParseRecommendations(raw, false)
}

// fallbackStrategy samples the static corpus. It cannot fail; at worst it
// returns fewer songs than requested.
type fallbackStrategy struct{}

func (s *fallbackStrategy) Name() string { return "corpus-fallback" }

func (s *fallbackStrategy) Generate(_ context.Context, criteria *blueprint.Criteria, targetCount int) (*blueprint.Recommendations, error) {
	return GenerateFallback(criteria, targetCount), nil
}
