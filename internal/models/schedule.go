package models

// ClassSession represents one static timetable entry.
type ClassSession struct {
	ID        string `json:"id"`
	Grade     string `json:"grade"`
	Subject   string `json:"subject"`
	TeacherID string `json:"teacher_id"`
	Day       string `json:"day"`
	Time      string `json:"time"`
}
