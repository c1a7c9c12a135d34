// Package chat implements the scripted live-chat assistant: an ordered
// keyword rule table for canned replies and an explicit state machine for
// the widget session. Nothing here touches the network; lead forwarding
// goes through the LeadForwarder the session is constructed with.
package chat

import (
	"strings"
)

// Rule pairs trigger keywords with a canned reply. A message matches when
// it contains any keyword, case-insensitively.
type Rule struct {
	Keywords []string
	Reply    string
}

// Greeting opens every transcript.
const Greeting = "Hi! I'm here to help you with any questions about buying or selling real estate. How can I assist you today?"

// FallbackReply is sent when no rule matches.
const FallbackReply = "Thanks for your message! I'll get back to you shortly with detailed information. In the meantime, feel free to browse our featured properties or ask any other questions."

// DefaultRules returns the production reply script. Order matters: rules
// are evaluated in sequence and the first match wins.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"price", "cost", "budget"},
			Reply:    "Property prices vary by location and features. I'd be happy to provide you with current market data for specific areas you're interested in. What neighborhoods are you considering?",
		},
		{
			Keywords: []string{"sell"},
			Reply:    "Great! I can help you get the best value for your home. Would you like a free market analysis? I'll need your property address to get started.",
		},
		{
			Keywords: []string{"buy"},
			Reply:    "Excellent! I'd love to help you find your perfect home. What type of property are you looking for and what's your preferred area?",
		},
		{
			Keywords: []string{"area", "neighborhood", "location"},
			Reply:    "I specialize in Jupiter, Palm Beach Gardens, Delray Beach, and Boca Raton. Each area has unique characteristics. What lifestyle features are most important to you?",
		},
		{
			Keywords: []string{"schedule", "meet", "appointment"},
			Reply:    "I'd be happy to schedule a consultation! Let me get your contact information and we can set up a time that works for you.",
		},
	}
}

// Responder selects canned replies by evaluating rules in order.
type Responder struct {
	rules    []Rule
	fallback string
}

// NewResponder creates a Responder over the given rules.
func NewResponder(rules []Rule, fallback string) *Responder {
	return &Responder{
		rules:    rules,
		fallback: fallback,
	}
}

// NewDefaultResponder creates a Responder with the production script.
func NewDefaultResponder() *Responder {
	return NewResponder(DefaultRules(), FallbackReply)
}

// Reply returns the canned response for a user message: the first rule
// whose keyword appears in the message, or the fallback.
func (r *Responder) Reply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Reply
			}
		}
	}
	return r.fallback
}
