package dto

// ServiceBaseDTO registers a tracked service.
type ServiceBaseDTO struct {
	Name         string   `json:"name" binding:"required" validate:"min=1,max=64"`
	GooglePlayID string   `json:"google_play_id" validate:"max=128"`
	AppleStoreID string   `json:"apple_store_id" validate:"max=64"`
	Keywords     []string `json:"keywords" validate:"max=10"`
}

// ServiceDTO is one registered service.
type ServiceDTO struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	GooglePlayID string   `json:"google_play_id"`
	AppleStoreID string   `json:"apple_store_id"`
	Keywords     []string `json:"keywords"`
	CreatedAt    string   `json:"created_at"`
}
