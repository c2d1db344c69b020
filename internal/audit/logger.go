package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/weecompany/reservas-api/internal/models"
)

// Writer persists a single audit event.
type Writer interface {
	Write(ev Event) error
}

// Logger writes audit events as rows through gorm.
type Logger struct {
	db *gorm.DB
}

func NewLogger(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&row).Error
}
