package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/postboard/postboard/internal/audit"
	"github.com/postboard/postboard/internal/auth"
	"github.com/postboard/postboard/internal/entities"
)

type AuditController struct {
	auditService *audit.Service
}

func NewAuditController(auditService *audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// GetAuthEvents returns the caller's paginated auth events as JSON
// GET /auth/events
func (ac *AuditController) GetAuthEvents(c *gin.Context) {
	accountID := auth.GetAccountID(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}

	eventType := c.Query("type")
	offset := (page - 1) * limit

	var events []entities.AuthEvent
	var total int64
	var err error

	if eventType != "" {
		events, total, err = ac.auditService.GetEventsByType(entities.AuthEventType(eventType), accountID, limit, offset)
	} else {
		events, total, err = ac.auditService.GetEvents(accountID, limit, offset)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load auth events",
		})
		return
	}

	totalPages := (int(total) + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"events":       events,
		"page":         page,
		"limit":        limit,
		"total_pages":  totalPages,
		"total_events": total,
	})
}
