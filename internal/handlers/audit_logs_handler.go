package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	repo audit.Repository
	log  *zap.Logger
}

func NewAuditLogsHandler(repo audit.Repository, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo, log: log}
}

type AuditLogsQuery struct {
	Entity string `form:"entity" binding:"omitempty,max=50"`
	Action string `form:"action" binding:"omitempty,max=50"`
}

// List godoc
// @Summary   List the audit trail of the caller's barbershop
// @Tags      audit
// @Produce   json
// @Security  BearerAuth
// @Param     entity query string false "entity name, e.g. barber"
// @Param     action query string false "action, e.g. barber_created"
// @Param     page   query int    false "page"  default(1)
// @Param     limit  query int    false "limit" default(20)
// @Success   200 {object} pagination.Page[models.AuditLog]
// @Router    /audit-logs [get]
func (h *AuditLogsHandler) List(c *gin.Context) {
	barbershopID, ok := middleware.BarbershopID(c)
	if !ok {
		httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
		return
	}

	p, err := pagination.Bind(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var q AuditLogsQuery
	if err := bindQuery(c, &q); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	// --------------------------------------------------
	// Always scoped to the caller's barbershop
	// --------------------------------------------------

	logs, total, err := h.repo.List(c.Request.Context(), audit.Filter{
		BarbershopID: barbershopID,
		Entity:       q.Entity,
		Action:       q.Action,
	}, p)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, pagination.NewPage(logs, p, total))
}
