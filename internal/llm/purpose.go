package llm

import "context"

// Purpose labels what a generation call is for. The audit middleware
// stores it on every llm_events row so `chronos llm stats` can break
// usage down per feature.
type Purpose string

const (
	PurposeTextbook Purpose = "textbook-gen"
	PurposeQuiz     Purpose = "quiz-gen"
	PurposeAnalysis Purpose = "quiz-analysis"
)

type purposeKey struct{}

// WithPurpose tags the context with the call's purpose.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom reads the purpose off the context, "unknown" when the
// caller never tagged it.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok {
		return string(p)
	}
	return "unknown"
}
