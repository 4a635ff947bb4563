// Package audit records authentication activity. Events carry outcomes and
// correlation identifiers only, never credential material.
package audit

import (
	"log"
	"time"

	"github.com/postboard/postboard/internal/database/audit"
	"github.com/postboard/postboard/internal/entities"
)

// Service provides high-level audit logging for authentication events.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records an auth event.
func (s *Service) Log(event *entities.AuthEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an auth event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuthEvent) {
	go func() {
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log auth event: %v", err)
		}
	}()
}

// RecordSignup records a signup attempt.
func (s *Service) RecordSignup(accountID uint, correlationID, ip string, err error) {
	s.LogAsync(s.newEvent(entities.AuthEventSignup, accountID, correlationID, ip, err))
}

// RecordLogin records a login attempt.
func (s *Service) RecordLogin(accountID uint, correlationID, ip string, err error) {
	s.LogAsync(s.newEvent(entities.AuthEventLogin, accountID, correlationID, ip, err))
}

// RecordTokenRejected records a protected request rejected by token
// verification.
func (s *Service) RecordTokenRejected(correlationID, ip string, err error) {
	s.LogAsync(s.newEvent(entities.AuthEventTokenRejected, 0, correlationID, ip, err))
}

// GetEvents returns paginated auth events for an account, newest first.
func (s *Service) GetEvents(accountID uint, limit, offset int) ([]entities.AuthEvent, int64, error) {
	return s.repo.GetEvents(accountID, limit, offset)
}

// GetEventsByType returns paginated auth events of one type.
func (s *Service) GetEventsByType(eventType entities.AuthEventType, accountID uint, limit, offset int) ([]entities.AuthEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, accountID, limit, offset)
}

// DeleteOldEvents removes auth events older than the retention period.
// Returns the number of deleted events.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	return s.repo.DeleteOldEvents(time.Now().Add(-retention))
}

func (s *Service) newEvent(eventType entities.AuthEventType, accountID uint, correlationID, ip string, err error) *entities.AuthEvent {
	event := &entities.AuthEvent{
		AccountID:     accountID,
		EventType:     eventType,
		CorrelationID: correlationID,
		IPAddress:     ip,
		Status:        entities.AuthEventStatusSuccess,
	}
	if err != nil {
		event.Status = entities.AuthEventStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
	return event
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
