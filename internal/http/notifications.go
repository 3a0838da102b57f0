package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghassen-kharrat/portfolio/internal/notify"
)

// NotificationsController exposes the visitor's toast stack.
type NotificationsController struct{}

func NewNotificationsController() *NotificationsController {
	return &NotificationsController{}
}

// notificationCreateRequest is the body for enqueueing a toast.
type notificationCreateRequest struct {
	Message    string `json:"message"`
	Kind       string `json:"kind"`
	DurationMS *int64 `json:"duration_ms"` // absent: default timeout; negative: sticky
}

// List returns the visible notifications, oldest first.
func (n *NotificationsController) List(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "notifications")
		return
	}

	entries := sess.Bus.List()
	c.JSON(http.StatusOK, gin.H{"notifications": entries})
}

// Create enqueues a notification and returns its generated id.
func (n *NotificationsController) Create(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "notifications")
		return
	}

	var req notificationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid notification payload")
		return
	}

	kind := notify.Kind(req.Kind)
	switch kind {
	case notify.KindSuccess, notify.KindError, notify.KindInfo, notify.KindWarning:
	case "":
		kind = notify.KindInfo
	default:
		respondBadRequest(c, "unknown notification kind: "+req.Kind)
		return
	}

	var id string
	if req.DurationMS == nil {
		id = sess.Bus.EnqueueDefault(req.Message, kind)
	} else if *req.DurationMS < 0 {
		id = sess.Bus.Enqueue(req.Message, kind, notify.DurationInfinite)
	} else {
		id = sess.Bus.Enqueue(req.Message, kind, time.Duration(*req.DurationMS)*time.Millisecond)
	}

	respondCreated(c, gin.H{"id": id})
}

// Dismiss removes a notification. Dismissing an id that is already gone is
// a no-op, so racing the auto-dismiss timer is harmless.
func (n *NotificationsController) Dismiss(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "notifications")
		return
	}

	sess.Bus.Dismiss(c.Param("id"))
	respondSuccess(c, "dismissed")
}
