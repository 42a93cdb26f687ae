package models

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "PRESENT"
	AttendanceStatusAbsent  AttendanceStatus = "ABSENT"
	AttendanceStatusLate    AttendanceStatus = "LATE"
	AttendanceStatusExcused AttendanceStatus = "EXCUSED"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusExcused:
		return true
	default:
		return false
	}
}

// SubjectKind discriminates whose attendance a record tracks.
type SubjectKind string

const (
	SubjectKindStudent SubjectKind = "STUDENT"
	SubjectKindTeacher SubjectKind = "TEACHER"
)

// AttendanceSubject identifies the person a record belongs to. Exactly one
// kind is set per record; the tagged form keeps that structural rather than
// a convention over two optional fields.
type AttendanceSubject struct {
	Kind SubjectKind `json:"kind"`
	ID   string      `json:"id"`
}

// StudentSubject builds a subject referencing a student.
func StudentSubject(id string) AttendanceSubject {
	return AttendanceSubject{Kind: SubjectKindStudent, ID: id}
}

// TeacherSubject builds a subject referencing a teacher.
func TeacherSubject(id string) AttendanceSubject {
	return AttendanceSubject{Kind: SubjectKindTeacher, ID: id}
}

// Valid returns true when the subject carries a known kind and an id.
func (s AttendanceSubject) Valid() bool {
	if s.ID == "" {
		return false
	}
	return s.Kind == SubjectKindStudent || s.Kind == SubjectKindTeacher
}

// AttendanceRecord captures one person's status on one date. A collection
// holds at most one record per (subject, date) pair; writing a new record
// for the same pair replaces the prior one.
type AttendanceRecord struct {
	ID      string            `json:"id"`
	Date    string            `json:"date"`
	Subject AttendanceSubject `json:"subject"`
	Status  AttendanceStatus  `json:"status"`
	Remarks *string           `json:"remarks,omitempty"`
}

// SameSubjectDate reports whether two records collide on the merge key.
func (a AttendanceRecord) SameSubjectDate(b AttendanceRecord) bool {
	return a.Date == b.Date && a.Subject == b.Subject
}
