package services

import (
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultActivityCapacity = 500

// ActivityLogService keeps the most recent storefront actions in a bounded
// in-memory buffer and writes each one to the structured log.
type ActivityLogService struct {
	log *zap.Logger
	now func() time.Time

	mu      sync.RWMutex
	entries []models.ActivityLog
	next    int
	full    bool
}

func NewActivityLogService(log *zap.Logger, capacity int) *ActivityLogService {
	if log == nil {
		log = zap.NewNop()
	}
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &ActivityLogService{
		log:     log,
		now:     time.Now,
		entries: make([]models.ActivityLog, capacity),
	}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	SessionID    string
	Action       string
	ResourceType string
	ResourceID   string
	StatusCode   int
	ErrorMessage string
	Client       utils.ClientInfo
}

// LogActivity records an action. It never fails the request.
func (s *ActivityLogService) LogActivity(req LogActivityRequest) models.ActivityLog {
	status := models.StatusSuccess
	if req.StatusCode >= 400 {
		status = models.StatusFailed
	}

	entry := models.ActivityLog{
		ID:           uuid.Must(uuid.NewV7()),
		SessionID:    req.SessionID,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Status:       status,
		StatusCode:   req.StatusCode,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    req.Client.IP,
		UserAgent:    req.Client.UserAgent,
		DeviceType:   req.Client.DeviceType,
		Browser:      req.Client.Browser,
		OS:           req.Client.OS,
		CreatedAt:    s.now().UTC(),
	}

	s.mu.Lock()
	s.entries[s.next] = entry
	s.next = (s.next + 1) % len(s.entries)
	if s.next == 0 {
		s.full = true
	}
	s.mu.Unlock()

	fields := []zap.Field{
		zap.String("action", entry.Action),
		zap.String("resource_type", entry.ResourceType),
		zap.String("resource_id", entry.ResourceID),
		zap.String("session", entry.SessionID),
		zap.Int("status", entry.StatusCode),
		zap.String("ip", entry.IPAddress),
		zap.String("device", entry.DeviceType),
	}
	if status == models.StatusFailed {
		s.log.Warn("activity failed", append(fields, zap.String("error", entry.ErrorMessage))...)
	} else {
		s.log.Info("activity", fields...)
	}
	return entry
}

// Recent returns up to n entries, newest first.
func (s *ActivityLogService) Recent(n int) []models.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	size := s.next
	if s.full {
		size = len(s.entries)
	}
	n = min(max(n, 0), size)

	out := make([]models.ActivityLog, 0, n)
	for i := 1; i <= n; i++ {
		idx := (s.next - i + len(s.entries)) % len(s.entries)
		out = append(out, s.entries[idx])
	}
	return out
}
