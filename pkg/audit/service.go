package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/auditlog"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/pkg/logger"
)

// Service records and queries the audit trail
type Service struct {
	db  *ent.Client
	log logger.Logger
}

// NewService creates a new audit service
func NewService(db *ent.Client, log logger.Logger) *Service {
	return &Service{db: db, log: log}
}

// Record appends an audit entry. Audit failures are logged but never
// fail the operation being audited.
func (s *Service) Record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID uuid.UUID, changes map[string]interface{}, ip string) {
	create := s.db.AuditLog.Create().
		SetAction(action).
		SetEntityType(entityType)

	if userID != (uuid.UUID{}) {
		create = create.SetUserID(userID)
	}
	if entityID != (uuid.UUID{}) {
		create = create.SetEntityID(entityID)
	}
	if changes != nil {
		create = create.SetChanges(changes)
	}
	if ip != "" {
		create = create.SetIPAddress(ip)
	}

	if _, err := create.Save(ctx); err != nil {
		s.log.Warn("audit record failed", "action", action, "error", err)
	}
}

// ListByEntity returns the trail for one entity, newest first
func (s *Service) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]*ent.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.AuditLog.Query().
		Where(
			auditlog.EntityTypeEQ(entityType),
			auditlog.EntityIDEQ(entityID),
		).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	return rows, nil
}

// ListByUser returns one user's recent actions, newest first
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*ent.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.AuditLog.Query().
		Where(auditlog.HasUserWith(user.IDEQ(userID))).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	return rows, nil
}
