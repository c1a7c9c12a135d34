package chat

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// State is the widget's lifecycle position.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateMinimized
	StateActive
)

// String returns the state name for logs and serialization.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateMinimized:
		return "minimized"
	case StateActive:
		return "active"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Timing constants for the simulated assistant.
const (
	// TypingDelay is the simulated pause before the canned reply appears.
	TypingDelay = 1500 * time.Millisecond
	// AutoOpenDelay is how long a first-time visitor browses before the
	// widget opens itself.
	AutoOpenDelay = 30 * time.Second
)

// ContactPromptThreshold is the transcript length at which the session asks
// for contact details, once.
const ContactPromptThreshold = 5

// Sender labels for transcript messages.
const (
	SenderAgent = "agent"
	SenderUser  = "user"
)

// Message is one entry in the append-only transcript.
type Message struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Contact holds the visitor's details once provided.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LeadForwarder receives chat messages as leads once the visitor has
// provided contact details.
type LeadForwarder interface {
	ForwardChatLead(ctx context.Context, contact Contact, message string) error
}

// ErrInvalidTransition is returned for state changes the widget does not
// allow (e.g. minimizing a closed widget).
var ErrInvalidTransition = errors.New("invalid chat state transition")

// Session is the widget's state: FSM position, transcript, and contact
// capture. All state is ephemeral except the has-seen flag, which the
// caller persists and supplies at construction. Sessions are owned by a
// single event stream and are not safe for concurrent use.
type Session struct {
	responder  *Responder
	forwarder  LeadForwarder
	state      State
	transcript []Message
	contact    Contact
	hasContact bool
	prompted   bool
	seen       bool
}

// NewSession creates a closed session seeded with the agent greeting.
// seen is the persisted has-seen flag, read once at initialization.
func NewSession(responder *Responder, forwarder LeadForwarder, seen bool) *Session {
	s := &Session{
		responder: responder,
		forwarder: forwarder,
		state:     StateClosed,
		seen:      seen,
	}
	s.append(SenderAgent, Greeting)
	return s
}

// State returns the current FSM position.
func (s *Session) State() State {
	return s.state
}

// Transcript returns the messages so far.
func (s *Session) Transcript() []Message {
	return s.transcript
}

// ShouldAutoOpen reports whether the auto-open timer should be armed:
// only for visitors who have never seen the widget. Arming the timer
// marks the session seen so the widget never auto-opens twice.
func (s *Session) ShouldAutoOpen() bool {
	if s.seen {
		return false
	}
	s.seen = true
	return true
}

// Seen returns the value to persist for the has-seen flag.
func (s *Session) Seen() bool {
	return s.seen
}

// Open transitions closed -> open.
func (s *Session) Open() error {
	if s.state != StateClosed {
		return fmt.Errorf("%w: open from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateOpen
	s.seen = true
	return nil
}

// Minimize collapses an open or active widget to the bubble.
func (s *Session) Minimize() error {
	if s.state != StateOpen && s.state != StateActive {
		return fmt.Errorf("%w: minimize from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateMinimized
	return nil
}

// Restore expands a minimized widget back to the conversation.
func (s *Session) Restore() error {
	if s.state != StateMinimized {
		return fmt.Errorf("%w: restore from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateActive
	return nil
}

// Close discards the widget. The transcript survives in memory but the
// caller is expected to drop the session.
func (s *Session) Close() {
	s.state = StateClosed
}

// Reply is the outcome of sending a user message.
type Reply struct {
	// Text is the canned agent response.
	Text string
	// PromptContact is set once, when the transcript reaches the
	// threshold and no contact details have been provided.
	PromptContact bool
	// ForwardErr reports a failed lead forward. The reply itself is
	// still valid; a lost chat lead does not break the conversation.
	ForwardErr error
}

// Send appends a user message, selects the canned reply, and appends it.
// Once contact details are on file every user message is also forwarded
// to lead intake.
func (s *Session) Send(ctx context.Context, text string) (Reply, error) {
	if s.state != StateOpen && s.state != StateActive {
		return Reply{}, fmt.Errorf("%w: send from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateActive

	s.append(SenderUser, text)
	reply := Reply{Text: s.responder.Reply(text)}
	s.append(SenderAgent, reply.Text)

	if !s.hasContact && !s.prompted && len(s.transcript) >= ContactPromptThreshold {
		reply.PromptContact = true
		s.prompted = true
	}

	if s.hasContact && s.forwarder != nil {
		if err := s.forwarder.ForwardChatLead(ctx, s.contact, "Live Chat: "+text); err != nil {
			reply.ForwardErr = err
		}
	}

	return reply, nil
}

// ProvideContact records the visitor's details and returns the
// acknowledgement message appended to the transcript. Subsequent
// messages are forwarded to lead intake.
func (s *Session) ProvideContact(contact Contact) string {
	s.contact = contact
	s.hasContact = true

	ack := fmt.Sprintf("Thanks %s! I have your contact information and will follow up with you directly. Feel free to continue asking questions here.", contact.Name)
	s.append(SenderAgent, ack)
	return ack
}

// HasContact reports whether contact details are on file.
func (s *Session) HasContact() bool {
	return s.hasContact
}

func (s *Session) append(sender, text string) {
	s.transcript = append(s.transcript, Message{
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	})
}
