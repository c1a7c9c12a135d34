package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/coastalrealty/coastal-api/internal/chat"
	apierrors "github.com/coastalrealty/coastal-api/internal/errors"
	"github.com/coastalrealty/coastal-api/internal/middleware"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/services"
)

// ChatLeadSource is recorded on leads forwarded from the chat widget.
const ChatLeadSource = "live-chat"

// ChatHandler handles the stateless chat responder endpoint. The widget
// owns its session state; the server evaluates the reply script and
// forwards chat leads once contact details accompany the message.
type ChatHandler struct {
	responder *chat.Responder
	forwarder chat.LeadForwarder
}

// NewChatHandler creates a new ChatHandler instance.
func NewChatHandler(responder *chat.Responder, forwarder chat.LeadForwarder) *ChatHandler {
	return &ChatHandler{
		responder: responder,
		forwarder: forwarder,
	}
}

// ChatContact carries the visitor's details alongside a message.
type ChatContact struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// ChatRequest represents the JSON body for the respond endpoint.
type ChatRequest struct {
	Message string       `json:"message" binding:"required"`
	Contact *ChatContact `json:"contact" binding:"omitempty"`
}

// ChatResponse represents the scripted reply.
type ChatResponse struct {
	Reply     string `json:"reply"`
	Forwarded bool   `json:"forwarded"`
}

// Respond handles POST /api/chat/respond.
// It returns the scripted reply for the message and, when contact details
// are included, forwards the message to lead intake. A failed forward does
// not fail the reply.
func (h *ChatHandler) Respond(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	response := ChatResponse{
		Reply: h.responder.Reply(req.Message),
	}

	if req.Contact != nil {
		contact := chat.Contact{
			Name:  req.Contact.Name,
			Email: req.Contact.Email,
			Phone: req.Contact.Phone,
		}
		if err := h.forwarder.ForwardChatLead(c.Request.Context(), contact, "Live Chat: "+req.Message); err != nil {
			if log != nil {
				log.Error("Failed to forward chat lead", err, map[string]interface{}{
					"email": contact.Email,
				})
			}
		} else {
			response.Forwarded = true
		}
	}

	c.JSON(http.StatusOK, response)
}

// leadServiceForwarder adapts LeadService to the chat package's
// LeadForwarder interface.
type leadServiceForwarder struct {
	leads services.LeadService
}

// NewChatLeadForwarder wraps a LeadService for use by the chat engine.
// Forwarded messages are stored as chat-type leads with the live-chat
// source.
func NewChatLeadForwarder(leads services.LeadService) chat.LeadForwarder {
	return &leadServiceForwarder{leads: leads}
}

func (f *leadServiceForwarder) ForwardChatLead(ctx context.Context, contact chat.Contact, message string) error {
	_, err := f.leads.Submit(ctx, services.LeadSubmission{
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Type:    models.LeadTypeChat,
		Message: message,
		Source:  ChatLeadSource,
	})
	return err
}
