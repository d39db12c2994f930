package models

// EmailRecord is the flat, normalized form of one harvested message.
// Field order matches the exported JSON document.
type EmailRecord struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	From    string `json:"from"`
	Date    string `json:"date"`
	Content string `json:"content"`
}
