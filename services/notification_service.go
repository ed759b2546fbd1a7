package services

import (
	"sync"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Notifier surfaces a titled message to the shopper. Fire-and-forget.
type Notifier interface {
	Notify(title, description string, isError bool)
}

func newNotification(title, description string, isError bool) *models.Notification {
	variant := models.VariantDefault
	if isError {
		variant = models.VariantDestructive
	}
	return &models.Notification{Title: title, Description: description, Variant: variant}
}

// ContextNotifier attaches the notification to the current request so the
// response helpers include it in the envelope. The last call wins.
type ContextNotifier struct {
	c   *gin.Context
	log *zap.Logger
}

func NewContextNotifier(c *gin.Context, log *zap.Logger) *ContextNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContextNotifier{c: c, log: log}
}

func (n *ContextNotifier) Notify(title, description string, isError bool) {
	note := newNotification(title, description, isError)
	n.c.Set(models.ContextKeyNotification, note)
	n.log.Debug("notification",
		zap.String("title", note.Title),
		zap.String("variant", note.Variant),
		zap.String("path", n.c.FullPath()),
	)
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu    sync.Mutex
	notes []models.Notification
}

func (r *Recorder) Notify(title, description string, isError bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, *newNotification(title, description, isError))
}

func (r *Recorder) Notifications() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.notes...)
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (models.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return models.Notification{}, false
	}
	return r.notes[len(r.notes)-1], true
}
