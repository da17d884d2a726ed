package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionTerminalCreate AuditAction = "TERMINAL_CREATE"
	AuditActionTerminalUpdate AuditAction = "TERMINAL_UPDATE"
	AuditActionTerminalDelete AuditAction = "TERMINAL_DELETE"
	AuditActionOrphanCleanup  AuditAction = "ORPHAN_CLEANUP"
)

// AuditLog records a single administrative action.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      string      `json:"actor_id,omitempty"` // token subject; empty for system actions
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
