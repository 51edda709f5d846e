package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"

	classModel "izone_backend/internals/features/academics/classes/model"
)

func baseClass() *classModel.ClassModel {
	teacherID := uuid.New()
	locationID := uuid.New()
	return &classModel.ClassModel{
		ClassID:           uuid.New(),
		ClassTeacherID:    teacherID,
		ClassLocationID:   &locationID,
		ClassName:         "IELTS Evening A",
		ClassScheduleDays: pq.Int64Array{2, 4},
		ClassTimeSlot:     "19:45-21:15",
		ClassMaxCapacity:  12,
	}
}

func TestUpdateClassApplyChangeFlags(t *testing.T) {
	newTeacher := uuid.New()
	newLocation := uuid.New()
	newSlot := "18:00-19:30"
	newPattern := "3,5"

	tests := []struct {
		name         string
		req          UpdateClassRequest
		wantSchedule bool
		wantTeacher  bool
		wantLocation bool
	}{
		{name: "empty request changes nothing", req: UpdateClassRequest{}},
		{
			name:        "new teacher flags teacher only",
			req:         UpdateClassRequest{ClassTeacherID: &newTeacher},
			wantTeacher: true,
		},
		{
			name:         "new location flags location only",
			req:          UpdateClassRequest{ClassLocationID: &newLocation},
			wantLocation: true,
		},
		{
			name:         "time slot flags schedule only",
			req:          UpdateClassRequest{ClassTimeSlot: &newSlot},
			wantSchedule: true,
		},
		{
			name:         "pattern flags schedule only",
			req:          UpdateClassRequest{ClassSchedulePattern: &newPattern},
			wantSchedule: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := baseClass()
			schedule, teacher, location, err := tt.req.Apply(m)
			if err != nil {
				t.Fatalf("Apply() error: %v", err)
			}
			if schedule != tt.wantSchedule || teacher != tt.wantTeacher || location != tt.wantLocation {
				t.Errorf("Apply() flags = (schedule=%v, teacher=%v, location=%v), want (%v, %v, %v)",
					schedule, teacher, location, tt.wantSchedule, tt.wantTeacher, tt.wantLocation)
			}
		})
	}
}

// Resubmitting the current teacher or room must not report a change: the
// controller only repoints future sessions for fields that really moved, so
// per-session substitute assignments survive unrelated edits.
func TestUpdateClassApplySameValuesReportNoChange(t *testing.T) {
	m := baseClass()
	sameTeacher := m.ClassTeacherID
	sameLocation := *m.ClassLocationID

	_, teacher, location, err := (&UpdateClassRequest{
		ClassTeacherID:  &sameTeacher,
		ClassLocationID: &sameLocation,
	}).Apply(m)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if teacher {
		t.Error("unchanged teacher reported as changed")
	}
	if location {
		t.Error("unchanged location reported as changed")
	}
}

func TestUpdateClassApplyRejectsBadTimetable(t *testing.T) {
	badSlot := "21:15-19:45"
	badPattern := "0,1,9"

	if _, _, _, err := (&UpdateClassRequest{ClassTimeSlot: &badSlot}).Apply(baseClass()); err == nil {
		t.Error("inverted time slot accepted")
	}
	if _, _, _, err := (&UpdateClassRequest{ClassSchedulePattern: &badPattern}).Apply(baseClass()); err == nil {
		t.Error("pattern with no valid codes accepted")
	}
}
