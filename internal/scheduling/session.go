package scheduling

// SessionState tracks the booking widget's selection progress.
type SessionState int

const (
	StateUnselected SessionState = iota
	StateDateSelected
	StateTimeSelected
	StateBookingOpened
)

func (s SessionState) String() string {
	switch s {
	case StateUnselected:
		return "unselected"
	case StateDateSelected:
		return "date_selected"
	case StateTimeSelected:
		return "time_selected"
	case StateBookingOpened:
		return "booking_opened"
	default:
		return "unknown"
	}
}

// Session models one visitor's pass through the booking widget: pick an
// available date, optionally pick a time, then hand off to the external
// scheduler. Nothing is tracked after the hand-off.
type Session struct {
	state        SessionState
	schedulerURL string
	window       Window
	date         string
	timeSlot     string
}

// NewSession starts a session over the given window.
func NewSession(schedulerURL string, window Window) *Session {
	return &Session{
		state:        StateUnselected,
		schedulerURL: schedulerURL,
		window:       window,
	}
}

// State returns the current session state.
func (s *Session) State() SessionState { return s.state }

// SelectedDate returns the selected date, empty before any selection.
func (s *Session) SelectedDate() string { return s.date }

// SelectDate picks a date. Unavailable dates are rejected without a state
// change; re-selecting a date clears any previously chosen time.
func (s *Session) SelectDate(date string) error {
	if s.state == StateBookingOpened {
		return ErrSessionClosed
	}
	if !s.window.IsAvailable(date) {
		return ErrDateUnavailable
	}
	s.date = date
	s.timeSlot = ""
	s.state = StateDateSelected
	return nil
}

// SelectTime picks a time slot. Any of the fixed slots is accepted; no
// availability check applies to times.
func (s *Session) SelectTime(slot string) error {
	switch s.state {
	case StateBookingOpened:
		return ErrSessionClosed
	case StateUnselected:
		return ErrNoDateSelected
	}
	s.timeSlot = slot
	s.state = StateTimeSelected
	return nil
}

// OpenBooking hands off to the external scheduler, returning the booking URL
// carrying the selected date (and time, when chosen). The session is closed
// afterward.
func (s *Session) OpenBooking() (string, error) {
	switch s.state {
	case StateBookingOpened:
		return "", ErrSessionClosed
	case StateUnselected:
		return "", ErrNoDateSelected
	}
	s.state = StateBookingOpened
	return BookingURL(s.schedulerURL, s.date, s.timeSlot), nil
}
