package consts

const (
	SentimentCacheKey = "sentiment:cache:"
	AnalysisLockKey   = "analysis:lock:"
)
