package registration

import "time"

// EventName identifies an analytics marker emitted by the flow.
type EventName string

const (
	EventRegistrationStart      EventName = "registration_start"
	EventRegisterSubmit         EventName = "register_submit"
	EventProfilePictureUploaded EventName = "profile_picture_uploaded"
	EventProfileSaved           EventName = "profile_saved"
	EventRegisterSuccess        EventName = "register_success"
	EventProfileSkipped         EventName = "profile_skipped"
)

// String implements fmt.Stringer.
func (e EventName) String() string {
	return string(e)
}

// Event is a single analytics marker. It never carries form contents.
type Event struct {
	Name   EventName
	FlowID string
	Screen Screen
	At     time.Time
}
