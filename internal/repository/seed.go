package repository

import "github.com/stemsi/unigrade-backend/internal/model"

// Demo data loaded by the memory driver and by cmd/seed.

func DemoUsers() []model.User {
	return []model.User{
		{ID: "u1", Name: "Dr. Alan Turing", Email: "admin@uni.edu", Role: model.RoleAdmin},
		{ID: "u2", Name: "Prof. John Smith", Email: "prof.smith@uni.edu", Role: model.RoleTeacher, Department: "Computer Science"},
		{ID: "u3", Name: "Prof. Jane Doe", Email: "prof.doe@uni.edu", Role: model.RoleTeacher, Department: "Mathematics"},
		{ID: "u4", Name: "Alice Johnson", Email: "alice@uni.edu", Role: model.RoleStudent, StudentID: "S2024001", Department: "Computer Science"},
		{ID: "u5", Name: "Bob Williams", Email: "bob@uni.edu", Role: model.RoleStudent, StudentID: "S2024002", Department: "Computer Science"},
	}
}

func DemoCourses() []model.Course {
	return []model.Course{
		{ID: "c1", Code: "CS101", Name: "Intro to Programming", Credits: 3.0, Department: "Computer Science", Semester: 1},
		{ID: "c2", Code: "CS102", Name: "Data Structures", Credits: 4.0, Department: "Computer Science", Semester: 2},
		{ID: "c3", Code: "MATH101", Name: "Calculus I", Credits: 3.0, Department: "Mathematics", Semester: 1},
		{ID: "c4", Code: "ENG101", Name: "Technical Writing", Credits: 2.0, Department: "Humanities", Semester: 1},
	}
}

func DemoAllocations() []model.CourseAllocation {
	return []model.CourseAllocation{
		{ID: "a1", CourseID: "c1", TeacherID: "u2", AcademicSession: "Fall 2024"},
		{ID: "a2", CourseID: "c2", TeacherID: "u2", AcademicSession: "Fall 2024"},
		{ID: "a3", CourseID: "c3", TeacherID: "u3", AcademicSession: "Fall 2024"},
		{ID: "a4", CourseID: "c4", TeacherID: "u3", AcademicSession: "Fall 2024"},
	}
}

// DemoMarks are two CS101 results awaiting approval.
func DemoMarks() []model.MarkRecord {
	return []model.MarkRecord{
		{
			ID: "m1", StudentID: "u4", CourseID: "c1", CourseCode: "CS101", CourseName: "Intro to Programming",
			Credits: 3, Semester: 1, Theory: 60, Lab: 25, Status: model.MarkStatusSubmitted,
		},
		{
			ID: "m2", StudentID: "u5", CourseID: "c1", CourseCode: "CS101", CourseName: "Intro to Programming",
			Credits: 3, Semester: 1, Theory: 50, Lab: 20, Status: model.MarkStatusSubmitted,
		},
	}
}
