package dto

// SlotListResponse keeps Slots non-nil so it always encodes as a JSON array.
type SlotListResponse struct {
	Slots []string `json:"creneaux"`
	Error string   `json:"error,omitempty"`
}
