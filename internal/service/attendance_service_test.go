package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/edusphere-api/internal/models"
	appErrors "github.com/edusphere/edusphere-api/pkg/errors"
)

type fakeAnalyzer struct {
	lastPayload string
	reply       string
}

func (f *fakeAnalyzer) AnalyzeAttendance(ctx context.Context, serializedRecords string) string {
	f.lastPayload = serializedRecords
	return f.reply
}

func TestAttendanceServiceMarkReplacesSameSheet(t *testing.T) {
	svc := NewAttendanceService(newStoreForTest(t), &fakeAnalyzer{}, nil, nil)
	ctx := context.Background()

	_, err := svc.Mark(ctx, MarkAttendanceRequest{Records: []MarkAttendanceItem{
		{Date: "2024-03-01", Kind: "student", SubjectID: "s1", Status: "present"},
		{Date: "2024-03-01", Kind: "teacher", SubjectID: "t1", Status: "absent"},
	}})
	require.NoError(t, err)

	_, err = svc.Mark(ctx, MarkAttendanceRequest{Records: []MarkAttendanceItem{
		{Date: "2024-03-01", Kind: "STUDENT", SubjectID: "s1", Status: "LATE"},
	}})
	require.NoError(t, err)

	records := svc.List(ctx, "2024-03-01")
	require.Len(t, records, 2)
	for _, rec := range records {
		if rec.Subject == models.StudentSubject("s1") {
			assert.Equal(t, models.AttendanceStatusLate, rec.Status)
		}
	}
}

func TestAttendanceServiceMarkValidation(t *testing.T) {
	svc := NewAttendanceService(newStoreForTest(t), &fakeAnalyzer{}, nil, nil)

	tests := []struct {
		name string
		req  MarkAttendanceRequest
	}{
		{"empty sheet", MarkAttendanceRequest{}},
		{"bad status", MarkAttendanceRequest{Records: []MarkAttendanceItem{
			{Date: "2024-03-01", Kind: "STUDENT", SubjectID: "s1", Status: "SLEEPING"},
		}}},
		{"bad kind", MarkAttendanceRequest{Records: []MarkAttendanceItem{
			{Date: "2024-03-01", Kind: "ROBOT", SubjectID: "s1", Status: "PRESENT"},
		}}},
		{"bad date", MarkAttendanceRequest{Records: []MarkAttendanceItem{
			{Date: "01/03/2024", Kind: "STUDENT", SubjectID: "s1", Status: "PRESENT"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Mark(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
		})
	}
}

func TestAttendanceServiceListFiltersByDate(t *testing.T) {
	svc := NewAttendanceService(newStoreForTest(t), &fakeAnalyzer{}, nil, nil)
	ctx := context.Background()

	_, err := svc.Mark(ctx, MarkAttendanceRequest{Records: []MarkAttendanceItem{
		{Date: "2024-03-01", Kind: "STUDENT", SubjectID: "s1", Status: "PRESENT"},
		{Date: "2024-03-02", Kind: "STUDENT", SubjectID: "s1", Status: "ABSENT"},
	}})
	require.NoError(t, err)

	assert.Len(t, svc.List(ctx, ""), 2)
	assert.Len(t, svc.List(ctx, "2024-03-02"), 1)
	assert.Len(t, svc.List(ctx, "2024-03-03"), 0)
}

func TestAttendanceServiceAnalyzeEnrichesStudentNames(t *testing.T) {
	analyzer := &fakeAnalyzer{reply: "Looks fine."}
	svc := NewAttendanceService(newStoreForTest(t), analyzer, nil, nil)
	ctx := context.Background()

	_, err := svc.Mark(ctx, MarkAttendanceRequest{Records: []MarkAttendanceItem{
		{Date: "2024-03-01", Kind: "STUDENT", SubjectID: "s1", Status: "PRESENT"},
		{Date: "2024-03-01", Kind: "TEACHER", SubjectID: "t1", Status: "PRESENT"},
	}})
	require.NoError(t, err)

	reply := svc.Analyze(ctx, "")
	assert.Equal(t, "Looks fine.", reply)
	// Student records carry the roster name; teacher records stay anonymous.
	assert.Contains(t, analyzer.lastPayload, "Alice Johnson")
	assert.NotContains(t, analyzer.lastPayload, "Mr. Anderson")
}

func TestAttendanceServiceAnalyzeRespectsBeforeDateAndLimit(t *testing.T) {
	analyzer := &fakeAnalyzer{reply: "ok"}
	svc := NewAttendanceService(newStoreForTest(t), analyzer, nil, nil)
	ctx := context.Background()

	items := make([]MarkAttendanceItem, 0, 25)
	for day := 1; day <= 25; day++ {
		items = append(items, MarkAttendanceItem{
			Date: fmt.Sprintf("2024-03-%02d", day), Kind: "STUDENT", SubjectID: "s1", Status: "PRESENT",
		})
	}
	_, err := svc.Mark(ctx, MarkAttendanceRequest{Records: items})
	require.NoError(t, err)

	svc.Analyze(ctx, "2024-03-10")
	assert.Contains(t, analyzer.lastPayload, "2024-03-10")
	assert.NotContains(t, analyzer.lastPayload, "2024-03-11")

	svc.Analyze(ctx, "")
	// Only the most recent twenty records survive the trim.
	assert.NotContains(t, analyzer.lastPayload, "2024-03-05")
	assert.Contains(t, analyzer.lastPayload, "2024-03-25")
}
