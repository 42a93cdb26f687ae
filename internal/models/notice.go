package models

// Notice is a broadcast message shown on the notice board, newest first.
type Notice struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Audience []Role `json:"audience"`
}
