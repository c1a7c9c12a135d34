package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coastalrealty/coastal-api/internal/chat"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/services"
)

func setupChatRouter(forwarder chat.LeadForwarder) *gin.Engine {
	handler := NewChatHandler(chat.NewDefaultResponder(), forwarder)
	return setupTestRouter(func(r *gin.Engine) {
		r.POST("/api/chat/respond", handler.Respond)
	})
}

func postChat(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/respond", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatRespond_ScriptedReply(t *testing.T) {
	mockLeads := new(MockLeadService)
	router := setupChatRouter(NewChatLeadForwarder(mockLeads))

	w := postChat(t, router, map[string]interface{}{
		"message": "What does a condo cost around here?",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "Property prices vary")
	assert.False(t, resp.Forwarded)
	mockLeads.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestChatRespond_ForwardsWithContact(t *testing.T) {
	mockLeads := new(MockLeadService)
	router := setupChatRouter(NewChatLeadForwarder(mockLeads))

	mockLeads.On("Submit", mock.Anything, mock.MatchedBy(func(sub services.LeadSubmission) bool {
		return sub.Type == models.LeadTypeChat &&
			sub.Source == ChatLeadSource &&
			sub.Message == "Live Chat: I want to schedule a showing" &&
			sub.Email == "jane@example.com"
	})).Return(&models.Lead{ID: 9}, nil)

	w := postChat(t, router, map[string]interface{}{
		"message": "I want to schedule a showing",
		"contact": map[string]string{
			"name":  "Jane Doe",
			"email": "jane@example.com",
			"phone": "(561) 555-0199",
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "schedule a consultation")
	assert.True(t, resp.Forwarded)
	mockLeads.AssertExpectations(t)
}

func TestChatRespond_ForwardFailureStillReplies(t *testing.T) {
	mockLeads := new(MockLeadService)
	router := setupChatRouter(NewChatLeadForwarder(mockLeads))

	mockLeads.On("Submit", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	w := postChat(t, router, map[string]interface{}{
		"message": "hello there",
		"contact": map[string]string{
			"name":  "Jane Doe",
			"email": "jane@example.com",
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "Thanks for your message")
	assert.False(t, resp.Forwarded)
}

func TestChatRespond_MissingMessage(t *testing.T) {
	mockLeads := new(MockLeadService)
	router := setupChatRouter(NewChatLeadForwarder(mockLeads))

	w := postChat(t, router, map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatRespond_ContactRequiresEmail(t *testing.T) {
	mockLeads := new(MockLeadService)
	router := setupChatRouter(NewChatLeadForwarder(mockLeads))

	w := postChat(t, router, map[string]interface{}{
		"message": "hi",
		"contact": map[string]string{
			"name": "Jane Doe",
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockLeads.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}
