package types

// SummaryOption is one AI-generated alternative for the professional summary
type SummaryOption struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// SummaryOptions is the envelope returned by the summary suggestion prompt
type SummaryOptions struct {
	Summaries []SummaryOption `json:"summaries"`
}
