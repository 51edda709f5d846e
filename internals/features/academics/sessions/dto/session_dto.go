// file: internals/features/academics/sessions/dto/session_dto.go
package dto

import "github.com/google/uuid"

// CreateMakeupSessionRequest adds one ad-hoc session outside the generated
// pattern.
type CreateMakeupSessionRequest struct {
	SessionClassID uuid.UUID `json:"session_class_id" validate:"required"`
	SessionDate    string    `json:"session_date" validate:"required"`              // "2006-01-02"
	SessionTimeSlot string   `json:"session_time_slot" validate:"required"`         // "HH:MM-HH:MM"
	SessionNote    *string   `json:"session_note,omitempty"`
}

// UpdateSessionRequest patches a single future session (substitute teacher,
// room override, note, or cancellation).
type UpdateSessionRequest struct {
	SessionTeacherID  *uuid.UUID `json:"session_teacher_id,omitempty"`
	SessionLocationID *uuid.UUID `json:"session_location_id,omitempty"`
	SessionNote       *string    `json:"session_note,omitempty"`
	SessionCancelled  *bool      `json:"session_cancelled,omitempty"`
}
