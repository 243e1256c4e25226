package audit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-directory/internal/models"
)

const (
	ActionClientCreated = "client_created"
	ActionClientUpdated = "client_updated"
	ActionClientDeleted = "client_deleted"

	EntityClient = "client"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Logger persists audit events in the same request that produced them.
// A failed write is logged and swallowed: auditing never breaks the API.
type Logger struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Logger {
	return &Logger{db: db, log: log}
}

func (l *Logger) Record(ctx context.Context, ev Event) {
	if l == nil {
		return
	}

	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	if err := l.db.WithContext(ctx).Create(&entry).Error; err != nil {
		l.log.Error("audit write failed",
			zap.String("action", ev.Action),
			zap.Error(err),
		)
	}
}
