package dto

// OfferWallResponse describes one partner wall resolved for a user.
type OfferWallResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
