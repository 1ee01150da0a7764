package pipeline

import (
	"context"
	"fmt"
	"math"

	"github.com/hireloop/intake/internal/audit"
)

// Embedder is the external embedding provider contract.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Scorer converts a resume and a job summary into a match percentage. The
// score is a pure function of the two texts for a fixed provider; every
// failure degrades to 0.0 so a candidate is never left unprocessed.
type Scorer struct {
	embedder Embedder
	audit    *audit.Trail
}

func NewScorer(embedder Embedder, trail *audit.Trail) *Scorer {
	return &Scorer{embedder: embedder, audit: trail}
}

// Score returns a value in [0, 100], rounded to 2 decimal places. An empty
// summary is definitionally unscorable and returns 0.0 without any provider
// call.
func (s *Scorer) Score(ctx context.Context, resumeText, jobSummary string) float64 {
	if jobSummary == "" {
		return 0.0
	}

	resumeVec, err := s.embedder.Embed(ctx, resumeText)
	if err != nil {
		s.audit.Recordf(ctx, "error calculating similarity score: %v", err)
		return 0.0
	}

	jobVec, err := s.embedder.Embed(ctx, jobSummary)
	if err != nil {
		s.audit.Recordf(ctx, "error calculating similarity score: %v", err)
		return 0.0
	}

	sim, err := cosine(resumeVec, jobVec)
	if err != nil {
		s.audit.Recordf(ctx, "error calculating similarity score: %v", err)
		return 0.0
	}

	// clamp: floating point noise or negative correlation must still yield a
	// valid percentage
	score := sim * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return math.Round(score*100) / 100
}

func cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("zero-magnitude vector")
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
