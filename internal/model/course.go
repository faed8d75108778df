package model

// Course is immutable reference data.
type Course struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Credits    float64 `json:"credits"`
	Department string  `json:"department"`
	Semester   int     `json:"semester"`
}

// CourseAllocation links a teacher to a course for an academic session.
type CourseAllocation struct {
	ID              string `json:"id"`
	CourseID        string `json:"course_id"`
	TeacherID       string `json:"teacher_id"`
	AcademicSession string `json:"academic_session"`
}
