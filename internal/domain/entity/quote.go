package entity

// Quote is a static inspirational quote served by the catalog.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
