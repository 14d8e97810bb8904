package repository

import (
	"pricex-backend/internal/model"

	"gorm.io/gorm"
)

// AuditRepository appends to the search and audit logs. Both tables are
// write-only from the application's point of view.
type AuditRepository interface {
	RecordSearch(query *model.SearchQuery) error
	Record(entry *model.AuditLog) error
}

type auditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) AuditRepository {
	return &auditRepo{db}
}

func (r *auditRepo) RecordSearch(query *model.SearchQuery) error {
	return r.db.Create(query).Error
}

func (r *auditRepo) Record(entry *model.AuditLog) error {
	return r.db.Create(entry).Error
}
