package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ghassen-kharrat/portfolio/internal/database/messages"
	"github.com/ghassen-kharrat/portfolio/internal/entities"
	"github.com/ghassen-kharrat/portfolio/internal/mailer"
	"github.com/ghassen-kharrat/portfolio/internal/notify"
	"github.com/ghassen-kharrat/portfolio/internal/translations"
)

// ContactController handles contact form submissions. Delivery goes through
// the hosted relay in a single attempt; the outcome is surfaced to the
// visitor as a toast and archived either way.
type ContactController struct {
	mailer *mailer.Client
	store  *messages.Repository
}

func NewContactController(m *mailer.Client, store *messages.Repository) *ContactController {
	return &ContactController{
		mailer: m,
		store:  store,
	}
}

// contactRequest is the submission payload, accepted as form or JSON.
type contactRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

func (r *contactRequest) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return "email is required"
	}
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return "email is invalid"
	}
	if strings.TrimSpace(r.Message) == "" {
		return "message is required"
	}
	return ""
}

// Submit relays one contact form submission. There is no automatic retry:
// a failed send is reported to the visitor, who decides whether to resend.
func (ct *ContactController) Submit(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "contact")
		return
	}

	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "invalid contact payload")
		return
	}
	if msg := req.validate(); msg != "" {
		respondBadRequest(c, msg)
		return
	}

	locale := sess.Prefs.Locale()
	sendErr := ct.mailer.Send(c.Request.Context(), mailer.Submission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	})

	record := &entities.ContactMessage{
		VisitorID: sess.VisitorID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   req.Message,
		Delivered: sendErr == nil,
	}
	if sendErr != nil {
		record.Error = sendErr.Error()
	}
	if err := ct.store.Record(record); err != nil {
		log.Printf("Failed to archive contact message: %v", err)
	}

	if sendErr != nil {
		log.Printf("Contact form delivery failed: %v", sendErr)
		sess.Bus.EnqueueDefault(translations.T(locale, "contact.formError"), notify.KindError)
		c.JSON(http.StatusBadGateway, gin.H{
			"sent":          false,
			"notifications": sess.Bus.List(),
		})
		return
	}

	sess.Bus.EnqueueDefault(translations.T(locale, "contact.formSuccess"), notify.KindSuccess)
	c.JSON(http.StatusOK, gin.H{
		"sent":          true,
		"notifications": sess.Bus.List(),
	})
}
