package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type auditFilter struct {
	action   string
	entity   string
	entityID *uint
	from     string
	to       string
}

// List serves GET /audit-logs with optional action, entity, entity_id,
// from and to (YYYY-MM-DD) filters.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := auditFilter{
		action: c.Query("action"),
		entity: c.Query("entity"),
		from:   c.Query("from"),
		to:     c.Query("to"),
	}

	if raw := c.Query("entity_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, strconv.IntSize); err == nil {
			v := uint(id)
			f.entityID = &v
		}
	}

	h.respond(c, f)
}

// History serves GET /clients/:id/history. An id with no trail, including
// one that was never created, yields an empty page.
func (h *AuditLogsHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respond(c, auditFilter{entity: audit.EntityClient, entityID: &id})
}

func (h *AuditLogsHandler) respond(c *gin.Context, f auditFilter) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if f.action != "" {
		q = q.Where("action = ?", f.action)
	}

	if f.entity != "" {
		q = q.Where("entity = ?", f.entity)
	}

	if f.entityID != nil {
		q = q.Where("entity_id = ?", *f.entityID)
	}

	if f.from != "" {
		if from, err := time.Parse("2006-01-02", f.from); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if f.to != "" {
		if to, err := time.Parse("2006-01-02", f.to); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	logs := make([]models.AuditLog, 0)
	if err := q.
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
