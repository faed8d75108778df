package model

// MarkStatus enumerates the lifecycle states of a mark record.
// Rejection routes a record back to DRAFT, REJECTED is never assigned by the workflow.
type MarkStatus string

const (
	MarkStatusDraft     MarkStatus = "DRAFT"
	MarkStatusSubmitted MarkStatus = "SUBMITTED"
	MarkStatusApproved  MarkStatus = "APPROVED"
	MarkStatusRejected  MarkStatus = "REJECTED"
)

// Valid reports whether s is one of the four lifecycle states.
func (s MarkStatus) Valid() bool {
	switch s {
	case MarkStatusDraft, MarkStatusSubmitted, MarkStatusApproved, MarkStatusRejected:
		return true
	}
	return false
}

// MarkRecord is one student's result in one course.
//
// CourseCode, CourseName, Credits and Semester are a snapshot of the course taken
// when the record is first created. They are not re-synced if the course changes.
type MarkRecord struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id"`
	CourseID    string     `json:"course_id"`
	CourseCode  string     `json:"course_code"`
	CourseName  string     `json:"course_name"`
	Credits     float64    `json:"credits"`
	Semester    int        `json:"semester"`
	Theory      float64    `json:"theory"`
	Lab         float64    `json:"lab"`
	Total       float64    `json:"total"`
	GradePoint  float64    `json:"grade_point"`
	GradeLetter string     `json:"grade_letter"`
	Status      MarkStatus `json:"status"`
	// Persisted is false for roster placeholders that have never been saved.
	Persisted bool `json:"persisted"`
}

// RosterEntry pairs a student with their mark for one course.
type RosterEntry struct {
	Student User       `json:"student"`
	Mark    MarkRecord `json:"mark"`
}

// MarkInput is one edited roster row sent by a teacher.
type MarkInput struct {
	ID        string   `json:"id" binding:"omitempty,max=64"`
	StudentID string   `json:"student_id" binding:"required,notblank,max=64"`
	Theory    *float64 `json:"theory" binding:"required"`
	Lab       *float64 `json:"lab" binding:"required"`
}

// SaveMarksRequest is the payload for saving a course's marks.
// Submit sends the rows for approval, otherwise they are kept as drafts.
type SaveMarksRequest struct {
	Submit bool        `json:"submit"`
	Marks  []MarkInput `json:"marks" binding:"required,min=1,dive"`
}

// MarkIDsRequest is the payload for approve and reject actions.
type MarkIDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,notblank"`
}

// GradePreviewRequest asks for the grade a score pair would produce.
type GradePreviewRequest struct {
	Theory *float64 `json:"theory" binding:"required"`
	Lab    *float64 `json:"lab" binding:"required"`
}

// GradePreview is the live preview shown while a teacher edits a row.
type GradePreview struct {
	Theory      float64 `json:"theory"`
	Lab         float64 `json:"lab"`
	Total       float64 `json:"total"`
	GradeLetter string  `json:"grade_letter"`
	GradePoint  float64 `json:"grade_point"`
}
