package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/service"
)

type OperationsHandler struct {
	svs OperationServicer
}

func NewOperationsHandler(svs OperationServicer) *OperationsHandler {
	return &OperationsHandler{
		svs: svs,
	}
}

type OperationCreateParams struct {
	Amount               decimal.Decimal `binding:"required" json:"amount"`
	OriginAccountID      *int64          `json:"origin_account_id"`
	DestinationAccountID *int64          `json:"destination_account_id"`
	Commission           decimal.Decimal `json:"commission"`
}

type OperationResponse struct {
	ID                 int64            `json:"id"`
	Amount             decimal.Decimal  `json:"amount"`
	AmountUSD          decimal.Decimal  `json:"amount_usd"`
	AmountLocal        decimal.Decimal  `json:"amount_local"`
	Rate               decimal.Decimal  `json:"rate"`
	Commission         decimal.Decimal  `json:"commission"`
	OriginAccount      *AccountResponse `json:"origin_account,omitempty"`
	DestinationAccount *AccountResponse `json:"destination_account,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
}

func newOperationResponse(operation *domain.FundOperation) OperationResponse {
	response := OperationResponse{
		ID:          operation.ID,
		Amount:      operation.Amount,
		AmountUSD:   operation.AmountUSD(),
		AmountLocal: operation.AmountLocal(),
		Rate:        operation.Rate,
		Commission:  operation.Commission,
		CreatedAt:   operation.CreatedAt,
	}
	if operation.HasOrigin() {
		origin := newAccountResponse(operation.OriginAccount)
		response.OriginAccount = &origin
	}
	if operation.HasDestination() {
		dest := newAccountResponse(operation.DestinationAccount)
		response.DestinationAccount = &dest
	}
	return response
}

// Create POST RouteGroup + OperationsRoute. Проводит депозит, вывод или обмен
// валюты между административными счетами.
func (h *OperationsHandler) Create(c *gin.Context) {
	var params OperationCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	operation, err := h.svs.Create(reqCtx, service.CreateOperationArgs{
		Amount:               params.Amount,
		OriginAccountID:      params.OriginAccountID,
		DestinationAccountID: params.DestinationAccountID,
		Commission:           params.Commission,
	})
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, newOperationResponse(operation))
}

// Index GET RouteGroup + OperationsRoute.
func (h *OperationsHandler) Index(c *gin.Context) {
	limit, ok := parseLimitQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	operations, err := h.svs.List(reqCtx, limit)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	response := make([]OperationResponse, len(operations))
	for i := range operations {
		response[i] = newOperationResponse(&operations[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + OperationRoute.
func (h *OperationsHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	operation, err := h.svs.GetByID(reqCtx, id)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, newOperationResponse(operation))
}
