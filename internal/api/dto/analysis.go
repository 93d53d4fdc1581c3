package dto

// AnalysisRequestDTO triggers a full analysis run over the filtered subset.
type AnalysisRequestDTO struct {
	ServiceID string   `json:"service_id" binding:"required" validate:"min=1,max=64"`
	Sources   []string `json:"sources"`
	DateFrom  string   `json:"date_from"`
	DateTo    string   `json:"date_to"`
}

// AnalysisResultDTO reports what one run produced.
type AnalysisResultDTO struct {
	ServiceID  string `json:"service_id"`
	Analyzed   int    `json:"analyzed"`
	Classified int    `json:"classified"`
	Positive   int    `json:"positive"`
	Negative   int    `json:"negative"`
	Neutral    int    `json:"neutral"`
	Insights   int    `json:"insights"`
	Keywords   int    `json:"keywords"`
}

// InsightDTO is one HEART facet insight.
type InsightDTO struct {
	ID           uint64 `json:"id"`
	ServiceID    string `json:"service_id"`
	Category     string `json:"category"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	MentionCount int    `json:"mention_count"`
	Trend        string `json:"trend"`
	CreatedAt    string `json:"created_at"`
}

// KeywordDTO is one ranked keyword row.
type KeywordDTO struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
	Sentiment string `json:"sentiment"`
}

// KeywordTableDTO groups the two polarity tables for one service.
type KeywordTableDTO struct {
	ServiceID string        `json:"service_id"`
	Positive  []*KeywordDTO `json:"positive"`
	Negative  []*KeywordDTO `json:"negative"`
}

// NetworkNodeDTO is one keyword node in the co-occurrence graph.
type NetworkNodeDTO struct {
	ID        string `json:"id"`
	Frequency int    `json:"frequency"`
	Cluster   int    `json:"cluster"`
}

// NetworkEdgeDTO links two keywords that appear near each other.
type NetworkEdgeDTO struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight int     `json:"weight"`
	PMI    float64 `json:"pmi"`
}

// NetworkClusterDTO is one labeled keyword group.
type NetworkClusterDTO struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// NetworkDTO carries a full keyword network analysis.
type NetworkDTO struct {
	ServiceID string               `json:"service_id"`
	Nodes     []*NetworkNodeDTO    `json:"nodes"`
	Edges     []*NetworkEdgeDTO    `json:"edges"`
	Clusters  []*NetworkClusterDTO `json:"clusters"`
}
