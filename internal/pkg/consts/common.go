package consts

const (
	SourceGooglePlay = "google_play"
	SourceAppStore   = "app_store"
	SourceNaverBlog  = "naver_blog"
	SourceNaverCafe  = "naver_cafe"
)

const (
	SentimentPositive  = "positive"
	SentimentNegative  = "negative"
	SentimentNeutral   = "neutral"
	SentimentAnalyzing = "analyzing"
	SentimentAll       = "all"
)

const (
	PriorityCritical = "critical"
	PriorityMajor    = "major"
	PriorityMinor    = "minor"
)

const (
	TrendIncreasing = "increasing"
	TrendStable     = "stable"
	TrendDecreasing = "decreasing"
)

const (
	FacetHappiness   = "happiness"
	FacetEngagement  = "engagement"
	FacetAdoption    = "adoption"
	FacetRetention   = "retention"
	FacetTaskSuccess = "task_success"
)

// Facets is the fixed HEART facet order used across aggregation.
var Facets = []string{
	FacetHappiness,
	FacetEngagement,
	FacetAdoption,
	FacetRetention,
	FacetTaskSuccess,
}

// Sources is the set of supported collection channels.
var Sources = map[string]bool{
	SourceGooglePlay: true,
	SourceAppStore:   true,
	SourceNaverBlog:  true,
	SourceNaverCafe:  true,
}

// Sentiments is the set of sentiment values accepted as a query filter.
var Sentiments = map[string]bool{
	SentimentPositive:  true,
	SentimentNegative:  true,
	SentimentNeutral:   true,
	SentimentAnalyzing: true,
	SentimentAll:       true,
}

// PriorityRank orders insight priorities, critical first.
var PriorityRank = map[string]int{
	PriorityCritical: 0,
	PriorityMajor:    1,
	PriorityMinor:    2,
}

const (
	MaxInsights        = 5
	MaxKeywords        = 10
	ClassifyBatchSize  = 15
	FacetSampleLimit   = 15
	DefaultDisplayRows = 20
)

const (
	NetworkMinReviews  = 10
	NetworkTopKeywords = 30
	NetworkWindow      = 10
	NegativeTopWords   = 20
	NegativeWindow     = 5
	MinClusterSize     = 3
)
