package model

// GradeSheet is one semester of a student's approved results.
type GradeSheet struct {
	Semester     int          `json:"semester"`
	Results      []MarkRecord `json:"results"`
	GPA          float64      `json:"gpa"`
	TotalCredits float64      `json:"total_credits"`
}

// TranscriptData is a student's full transcript, semesters in ascending order.
type TranscriptData struct {
	Student   User         `json:"student"`
	Semesters []GradeSheet `json:"semesters"`
	CGPA      float64      `json:"cgpa"`
}

// SystemStats feeds the admin dashboard cards.
type SystemStats struct {
	TotalStudents    int     `json:"total_students"`
	TotalCourses     int     `json:"total_courses"`
	PendingApprovals int     `json:"pending_approvals"`
	AvgGPA           float64 `json:"avg_gpa"`
}
