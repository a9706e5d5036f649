package apimodels

type SearchRequest struct {
	// Query is the coding question to analyze
	Query string `json:"query"`

	// Code is an optional source snippet related to the question
	Code string `json:"code,omitempty"`

	// Language of the snippet (e.g. "python"); "auto" when unknown
	Language string `json:"language,omitempty"`
}

type SearchResponse struct {
	// The assembled analysis report
	Result string `json:"result"`

	// Error is set when the upstream model could not be reached;
	// Message then carries a human-readable explanation
	Error   bool   `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	// Metadata about the search
	Metadata SearchMetadata `json:"metadata"`
}

type SearchMetadata struct {
	// Time taken for the search
	Duration string `json:"duration"`

	// Model used, empty when a canned pattern answered
	Model string `json:"model,omitempty"`

	// Tokens used by the upstream call
	TokensUsed int64 `json:"tokensUsed"`

	// Source of the report: "model" or "pattern"
	Source string `json:"source"`
}
