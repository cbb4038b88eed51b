package auth

// Event is an input to Transition.
type Event interface {
	isEvent()
}

// Field names an editable input of either tab.
type Field int

const (
	FieldLoginEmail Field = iota
	FieldLoginPassword
	FieldEmail
	FieldOTP
	FieldPassword
	FieldConfirmPassword
)

// TabSelected switches tabs. Both forms are reset, even mid-request.
type TabSelected struct {
	Tab Tab
}

// FieldChanged is typing into an input.
type FieldChanged struct {
	Field Field
	Value string
}

// Submitted is pressing the button of the active tab.
type Submitted struct{}

// Succeeded reports a backend call started at Generation completed.
type Succeeded struct {
	Generation uint64
}

// Failed reports a backend call started at Generation failed. Message is the
// backend's own message, "" when it supplied none.
type Failed struct {
	Generation uint64
	Message    string
}

func (TabSelected) isEvent()  {}
func (FieldChanged) isEvent() {}
func (Submitted) isEvent()    {}
func (Succeeded) isEvent()    {}
func (Failed) isEvent()       {}
