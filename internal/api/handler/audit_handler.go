package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsdesk/internal/core/ports"
)

// AuditHandler exposes the article audit trail to admins.
type AuditHandler struct {
	query ports.AuditQuery
}

func NewAuditHandler(query ports.AuditQuery) *AuditHandler {
	return &AuditHandler{query: query}
}

type auditEventResponse struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	ActorID   string `json:"actor_id"`
	Timestamp string `json:"timestamp"`
}

// Events handles GET /admin/articles/:id/events. The trail survives a purge,
// so no existence check is made against the articles collection; an unknown
// id simply yields an empty trail.
//
// @Summary      Article audit trail, oldest first
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Article id"
// @Success      200  {array}  auditEventResponse
// @Router       /admin/articles/{id}/events [get]
func (h *AuditHandler) Events(c echo.Context) error {
	events, err := h.query.ListByArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	resp := make([]auditEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, auditEventResponse{
			ID:        e.ID,
			Action:    string(e.Action),
			ActorID:   e.ActorID,
			Timestamp: e.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
