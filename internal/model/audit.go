package model

import "github.com/google/uuid"

// SearchQuery is an append-only log of what people search for
type SearchQuery struct {
	BaseModel
	Query        string     `gorm:"type:varchar(500);not null;index" json:"query"`
	UserID       *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	Region       string     `gorm:"type:varchar(50)" json:"region"`
	ResultsCount int        `json:"results_count"`
}

// AuditLog is an append-only trail of notable actions
type AuditLog struct {
	BaseModel
	UserID     *uuid.UUID        `gorm:"type:uuid;index:idx_audit_user_time,priority:1" json:"user_id,omitempty"`
	Action     string            `gorm:"type:varchar(100);not null;index" json:"action"`
	EntityType string            `gorm:"type:varchar(50);not null" json:"entity_type"`
	EntityID   string            `gorm:"type:varchar(36)" json:"entity_id"`
	Details    map[string]string `gorm:"serializer:json" json:"details"`
	IPAddress  string            `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent  string            `gorm:"type:varchar(500)" json:"user_agent"`
}
