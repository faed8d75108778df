package model

// Role is fixed per user.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is reference data for admins, teachers and students.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	// StudentID is the registry number, set for students only.
	StudentID string `json:"student_id,omitempty"`
}

// LoginRequest is the payload for identifier-based login.
// Identifier is matched against the email or the student registry number.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required,notblank,max=255"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
