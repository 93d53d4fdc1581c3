package dto

// CollectionRequestDTO triggers review collection for one service. An empty
// Sources slice means every configured channel; Count 0 keeps each channel's
// default fetch size.
type CollectionRequestDTO struct {
	ServiceID string   `json:"service_id" binding:"required" validate:"min=1,max=64"`
	Sources   []string `json:"sources"`
	DateFrom  string   `json:"date_from"`
	DateTo    string   `json:"date_to"`
	Count     int      `json:"count" validate:"min=0,max=1000"`
}

// CollectionResultDTO reports how a collection run went per channel.
type CollectionResultDTO struct {
	ServiceID  string         `json:"service_id"`
	Collected  int            `json:"collected"`
	Duplicates int            `json:"duplicates"`
	PerSource  map[string]int `json:"per_source"`
	Failed     []string       `json:"failed,omitempty"`
}
