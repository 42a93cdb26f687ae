package store

import "github.com/edusphere/edusphere-api/internal/models"

// Seed data used when a collection has no usable persisted snapshot.

func seedStudents() []models.Student {
	return []models.Student{
		{ID: "s1", Name: "Alice Johnson", Grade: "10A", ParentName: "Robert Johnson", Contact: "555-0101", Email: "alice@school.com", Address: "123 Maple St", EnrollmentDate: "2023-09-01"},
		{ID: "s2", Name: "Bob Smith", Grade: "10A", ParentName: "Sarah Smith", Contact: "555-0102", Email: "bob@school.com", Address: "456 Oak Ave", EnrollmentDate: "2023-09-01"},
		{ID: "s3", Name: "Charlie Brown", Grade: "11B", ParentName: "James Brown", Contact: "555-0103", Email: "charlie@school.com", Address: "789 Pine Ln", EnrollmentDate: "2022-09-01"},
	}
}

func seedTeachers() []models.Teacher {
	return []models.Teacher{
		{ID: "t1", Name: "Mr. Anderson", Subject: "Mathematics", Email: "anderson@school.com", Phone: "555-1001", Salary: 55000, JoinDate: "2020-08-15"},
		{ID: "t2", Name: "Ms. Davis", Subject: "Science", Email: "davis@school.com", Phone: "555-1002", Salary: 52000, JoinDate: "2021-01-10"},
	}
}

func seedFees() []models.FeeRecord {
	paid := "2023-11-28"
	return []models.FeeRecord{
		{ID: "f1", StudentID: "s1", Amount: 500, DueDate: "2023-12-01", Status: models.FeeStatusPaid, Title: "Term 1 Tuition", PaymentDate: &paid},
		{ID: "f2", StudentID: "s2", Amount: 500, DueDate: "2023-12-01", Status: models.FeeStatusPending, Title: "Term 1 Tuition"},
		{ID: "f3", StudentID: "s3", Amount: 500, DueDate: "2023-12-01", Status: models.FeeStatusOverdue, Title: "Term 1 Tuition"},
	}
}

func seedNotices() []models.Notice {
	return []models.Notice{
		{ID: "n1", Title: "Science Fair 2024", Content: "The annual science fair will be held on March 15th. All students must submit projects by March 1st.", Date: "2024-02-10", Author: "Principal", Audience: []models.Role{models.RoleStudent, models.RoleTeacher, models.RoleParent}},
		{ID: "n2", Title: "Staff Meeting", Content: "Mandatory staff meeting this Friday at 3 PM in the conference room.", Date: "2024-02-12", Author: "Admin", Audience: []models.Role{models.RoleTeacher}},
	}
}

// seedClasses is the fixed timetable; it is never persisted or mutated.
func seedClasses() []models.ClassSession {
	return []models.ClassSession{
		{ID: "c1", Grade: "10A", Subject: "Math", TeacherID: "t1", Day: "Monday", Time: "09:00 - 10:00"},
		{ID: "c2", Grade: "10A", Subject: "Science", TeacherID: "t2", Day: "Monday", Time: "10:00 - 11:00"},
	}
}
