package dto

// ReviewQueryDTO carries the shared review filter taken from query params.
// Sources is comma separated ("google_play,app_store"); dates accept
// "2006-01-02" or RFC3339.
type ReviewQueryDTO struct {
	ServiceID string `form:"service_id"`
	Sources   string `form:"sources"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
	Sentiment string `form:"sentiment"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

// ReviewDTO is a single review row.
type ReviewDTO struct {
	ID        uint64  `json:"id"`
	UserID    string  `json:"user_id"`
	Source    string  `json:"source"`
	ServiceID *string `json:"service_id,omitempty"`
	Rating    int     `json:"rating"`
	Content   string  `json:"content"`
	Sentiment string  `json:"sentiment"`
	Link      *string `json:"link,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ReviewPageDTO is one page of reviews plus the filtered total.
type ReviewPageDTO struct {
	List     []*ReviewDTO `json:"list"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// ReviewStatsDTO summarizes the filtered subset.
type ReviewStatsDTO struct {
	Total         int64   `json:"total"`
	Positive      int64   `json:"positive"`
	Negative      int64   `json:"negative"`
	AverageRating float64 `json:"average_rating"`
}
