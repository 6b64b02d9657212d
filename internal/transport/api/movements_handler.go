package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/internal/service"
)

type MovementsHandler struct {
	svs MovementServicer
}

func NewMovementsHandler(svs MovementServicer) *MovementsHandler {
	return &MovementsHandler{
		svs: svs,
	}
}

type MovementResponse struct {
	ID             int64               `json:"id"`
	Type           domain.MovementType `json:"type"`
	GroupingID     int64               `json:"grouping_id"`
	Amount         decimal.Decimal     `json:"amount"`
	PurchaseID     *int64              `json:"purchase_id,omitempty"`
	FundingID      *int64              `json:"funding_id,omitempty"`
	OperationID    *int64              `json:"operation_id,omitempty"`
	StorePaymentID *int64              `json:"store_payment_id,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

func newMovementResponse(view service.MovementView) MovementResponse {
	return MovementResponse{
		ID:             view.Movement.ID,
		Type:           view.Movement.Type,
		GroupingID:     view.Movement.GroupingID,
		Amount:         view.Amount,
		PurchaseID:     view.Movement.PurchaseID,
		FundingID:      view.Movement.FundingID,
		OperationID:    view.Movement.OperationID,
		StorePaymentID: view.Movement.StorePaymentID,
		CreatedAt:      view.Movement.CreatedAt,
	}
}

// Index GET RouteGroup + MovementsRoute. Поддерживает фильтр по типу записи
// и лимит выборки.
func (h *MovementsHandler) Index(c *gin.Context) {
	limit, ok := parseLimitQuery(c)
	if !ok {
		return
	}

	filter := repoargs.MovementFilter{Limit: limit}
	if typeStr := c.Query("type"); typeStr != "" {
		movementType := domain.MovementType(typeStr)
		if !movementType.Valid() {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid movement type"})
			return
		}
		filter.Type = &movementType
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	views, err := h.svs.List(reqCtx, filter)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	response := make([]MovementResponse, len(views))
	for i, view := range views {
		response[i] = newMovementResponse(view)
	}
	c.JSON(http.StatusOK, response)
}

// Group GET RouteGroup + MovementGroupRoute. Возвращает все записи одной
// бизнес-транзакции.
func (h *MovementsHandler) Group(c *gin.Context) {
	groupingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	views, err := h.svs.GetGroup(reqCtx, groupingID)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	response := make([]MovementResponse, len(views))
	for i, view := range views {
		response[i] = newMovementResponse(view)
	}
	c.JSON(http.StatusOK, response)
}
