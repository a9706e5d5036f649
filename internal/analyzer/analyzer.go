package analyzer

import (
	"context"
	"log/slog"
	"time"

	"codesearch/apimodels"
	"codesearch/internal/llm"
)

type Analyzer struct {
	llmProvider llm.Provider
	model       string
}

func New(llmProvider llm.Provider, model string) *Analyzer {
	return &Analyzer{
		llmProvider: llmProvider,
		model:       model,
	}
}

// Search answers one coding question. A canned pattern match short-circuits
// the model call entirely; otherwise the question is forwarded upstream and
// the raw answer is reformatted. Upstream failures are returned wrapped in
// llm.ErrUpstream for the transport layers to classify.
func (a *Analyzer) Search(ctx context.Context, req apimodels.SearchRequest) (*apimodels.SearchResponse, error) {
	slog.Info("starting search", "query", req.Query, "hasCode", req.Code != "")
	startTime := time.Now()

	if match, ok := MatchSnippet(req.Code); ok {
		slog.Info("snippet matched canned pattern", "pattern", match.Name)
		return &apimodels.SearchResponse{
			Result: RenderReport(match.Sections),
			Metadata: apimodels.SearchMetadata{
				Duration: time.Since(startTime).String(),
				Source:   "pattern",
			},
		}, nil
	}

	llmResp, err := a.llmProvider.Complete(ctx, buildPrompt(req))
	if err != nil {
		slog.Error("completion failed", "error", err)
		return nil, err
	}

	slog.Debug("received completion", "tokens", llmResp.Usage.TotalTokens)

	return &apimodels.SearchResponse{
		Result: FormatReport(llmResp.Content, req.Query),
		Metadata: apimodels.SearchMetadata{
			Duration:   time.Since(startTime).String(),
			Model:      a.model,
			TokensUsed: llmResp.Usage.TotalTokens,
			Source:     "model",
		},
	}, nil
}
