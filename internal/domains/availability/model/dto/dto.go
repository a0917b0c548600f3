package dto

// WindowResponse partitions a horizon of calendar days: every day in the
// window appears in exactly one of the two lists, both sorted ascending.
type WindowResponse struct {
	BoatID    string   `json:"boat_id"`
	From      string   `json:"from"`
	Days      int      `json:"days"`
	Available []string `json:"available"`
	Blocked   []string `json:"blocked"`
}
