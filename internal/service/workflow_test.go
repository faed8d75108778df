package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/unigrade-backend/internal/model"
)

// bobMark is an existing SUBMITTED CS101 mark totalling 70.
func bobMark() model.MarkRecord {
	return model.MarkRecord{
		ID: "m2", StudentID: "u5", CourseID: "c1", CourseCode: "CS101", CourseName: "Intro to Programming",
		Credits: 3, Semester: 1, Theory: 50, Lab: 20, Status: model.MarkStatusSubmitted,
	}
}

func TestAssembleRosterSynthesizesMissingMarks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(bobMark())

	roster, err := f.roster.AssembleRoster(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, roster, 2)

	alice := roster[0]
	assert.Equal(t, "u4", alice.Student.ID)
	assert.False(t, alice.Mark.Persisted)
	assert.NotEmpty(t, alice.Mark.ID)
	assert.Equal(t, model.MarkStatusDraft, alice.Mark.Status)
	assert.Equal(t, 0.0, alice.Mark.Theory)
	assert.Equal(t, 0.0, alice.Mark.Lab)
	assert.Equal(t, 0.0, alice.Mark.Total)
	assert.Equal(t, "F", alice.Mark.GradeLetter)
	assert.Equal(t, 0.0, alice.Mark.GradePoint)
	assert.Equal(t, "CS101", alice.Mark.CourseCode)
	assert.Equal(t, 3.0, alice.Mark.Credits)
	assert.Equal(t, 1, alice.Mark.Semester)

	bob := roster[1]
	assert.Equal(t, "u5", bob.Student.ID)
	assert.True(t, bob.Mark.Persisted)
	assert.Equal(t, "m2", bob.Mark.ID)
	assert.Equal(t, model.MarkStatusSubmitted, bob.Mark.Status)
	assert.Equal(t, 70.0, bob.Mark.Total)
	assert.Equal(t, "A-", bob.Mark.GradeLetter)
	assert.Equal(t, 3.5, bob.Mark.GradePoint)

	// assembling never writes the placeholder
	all, err := f.marks.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAssembleRosterUnknownCourse(t *testing.T) {
	_, err := newFixture().roster.AssembleRoster(context.Background(), "c404")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestEndToEndSubmitApproveTranscript(t *testing.T) {
	ctx := context.Background()
	f := newFixture(bobMark())

	roster, err := f.roster.AssembleRoster(ctx, "c1")
	require.NoError(t, err)
	placeholder := roster[0].Mark

	saved, err := f.marking.SaveCourseMarks(ctx, "c1", []model.MarkInput{
		{ID: placeholder.ID, StudentID: "u4", Theory: score(60), Lab: score(25)},
	}, true)
	require.NoError(t, err)
	require.Len(t, saved, 1)

	alice := mustFind(t, f, "u4", "c1")
	assert.Equal(t, placeholder.ID, alice.ID)
	assert.Equal(t, 85.0, alice.Total)
	assert.Equal(t, "A+", alice.GradeLetter)
	assert.Equal(t, 4.0, alice.GradePoint)
	assert.Equal(t, model.MarkStatusSubmitted, alice.Status)
	assert.True(t, alice.Persisted)

	n, err := f.marking.Approve(ctx, []string{alice.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, model.MarkStatusApproved, mustFind(t, f, "u4", "c1").Status)

	tr, err := f.transcript.GetTranscript(ctx, "u4")
	require.NoError(t, err)
	require.Len(t, tr.Semesters, 1)
	assert.Equal(t, 1, tr.Semesters[0].Semester)
	assert.Equal(t, 4.0, tr.Semesters[0].GPA)
	assert.Equal(t, 3.0, tr.Semesters[0].TotalCredits)
	assert.Equal(t, 4.0, tr.CGPA)
}

func TestRejectReturnsToDraft(t *testing.T) {
	ctx := context.Background()
	f := newFixture(bobMark())

	n, err := f.marking.Reject(ctx, []string{"m2"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	bob := mustFind(t, f, "u5", "c1")
	assert.Equal(t, model.MarkStatusDraft, bob.Status)
	assert.NotEqual(t, model.MarkStatusRejected, bob.Status)

	pending, err := f.marking.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSaveAsDraftKeepsSnapshotOfExistingRecord(t *testing.T) {
	ctx := context.Background()
	existing := bobMark()
	existing.CourseName = "Programming (2023 syllabus)"
	f := newFixture(existing)

	_, err := f.marking.SaveCourseMarks(ctx, "c1", []model.MarkInput{
		{ID: "ignored", StudentID: "u5", Theory: score(150), Lab: score(-3)},
	}, false)
	require.NoError(t, err)

	bob := mustFind(t, f, "u5", "c1")
	assert.Equal(t, "m2", bob.ID)
	assert.Equal(t, "Programming (2023 syllabus)", bob.CourseName)
	assert.Equal(t, model.MarkStatusDraft, bob.Status)
	assert.Equal(t, 100.0, bob.Theory)
	assert.Equal(t, 0.0, bob.Lab)
	assert.Equal(t, 100.0, bob.Total)
	assert.Equal(t, "A+", bob.GradeLetter)
}

func TestSaveCourseMarksValidatesReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.marking.SaveCourseMarks(ctx, "c404", []model.MarkInput{{StudentID: "u4", Theory: score(1), Lab: score(1)}}, false)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = f.marking.SaveCourseMarks(ctx, "c1", []model.MarkInput{{StudentID: "u2", Theory: score(1), Lab: score(1)}}, false)
	assert.ErrorIs(t, err, ErrStudentNotFound)

	all, err := f.marks.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSaveMarksOverridesIncomingStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	rec := approvedMark("m9", "u4", demoCourse(t, "c2"), 40, 5)
	saved, err := f.marking.SaveMarks(ctx, []model.MarkRecord{rec}, false)
	require.NoError(t, err)
	assert.Equal(t, model.MarkStatusDraft, saved[0].Status)
	assert.Equal(t, 45.0, saved[0].Total)
	assert.Equal(t, "C", saved[0].GradeLetter)
}

func TestApproveUnknownIDIsNoop(t *testing.T) {
	f := newFixture(bobMark())
	n, err := f.marking.Approve(context.Background(), []string{"nope"})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, model.MarkStatusSubmitted, mustFind(t, f, "u5", "c1").Status)
}

func TestSaveCourseMarksReplacesTakenClientID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(bobMark())

	saved, err := f.marking.SaveCourseMarks(ctx, "c2", []model.MarkInput{
		{ID: "m2", StudentID: "u4", Theory: score(40), Lab: score(10)},
	}, false)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.NotEqual(t, "m2", saved[0].ID)

	n, err := f.marking.Approve(ctx, []string{"m2"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, model.MarkStatusApproved, mustFind(t, f, "u5", "c1").Status)
	assert.Equal(t, model.MarkStatusDraft, mustFind(t, f, "u4", "c2").Status)
}

func TestSaveCourseMarksDedupesClientIDsWithinBatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	saved, err := f.marking.SaveCourseMarks(ctx, "c1", []model.MarkInput{
		{ID: "row-1", StudentID: "u4", Theory: score(50), Lab: score(10)},
		{ID: "row-1", StudentID: "u5", Theory: score(45), Lab: score(10)},
	}, true)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "row-1", saved[0].ID)
	assert.NotEqual(t, "row-1", saved[1].ID)

	n, err := f.marking.Approve(ctx, []string{"row-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, model.MarkStatusSubmitted, mustFind(t, f, "u5", "c1").Status)
}
