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

type FundingsHandler struct {
	svs FundingServicer
}

func NewFundingsHandler(svs FundingServicer) *FundingsHandler {
	return &FundingsHandler{
		svs: svs,
	}
}

type FundingRecordParams struct {
	CustomerID int64            `binding:"required"         json:"customer_id"`
	Amount     decimal.Decimal  `binding:"required"         json:"amount"`
	Platform   string           `binding:"required"         json:"platform"`
	Status     string           `binding:"required"         json:"status"`
	Reference  string           `binding:"required,max=128" json:"reference"`
	Fee        decimal.Decimal  `json:"fee"`
	Error      *string          `json:"error"`
	Rate       *decimal.Decimal `json:"rate"`
}

type FundingResponse struct {
	ID         int64                  `json:"id"`
	CustomerID int64                  `json:"customer_id"`
	Amount     decimal.Decimal        `json:"amount"`
	Platform   domain.FundingPlatform `json:"platform"`
	Status     domain.FundingStatus   `json:"status"`
	Reference  string                 `json:"reference"`
	Fee        decimal.Decimal        `json:"fee"`
	Error      *string                `json:"error,omitempty"`
	Rate       *decimal.Decimal       `json:"rate,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

func newFundingResponse(funding *domain.Funding) FundingResponse {
	return FundingResponse{
		ID:         funding.ID,
		CustomerID: funding.CustomerID,
		Amount:     funding.Amount,
		Platform:   funding.Platform,
		Status:     funding.Status,
		Reference:  funding.Reference,
		Fee:        funding.Fee,
		Error:      funding.Error,
		Rate:       funding.Rate,
		CreatedAt:  funding.CreatedAt,
	}
}

// Record POST RouteGroup + FundingsRoute. Записывает исход пополнения,
// каким его сообщил платежный шлюз. Успешное пополнение зачисляет деньги
// клиенту и на счет платформы, повторный reference вернет 422.
func (h *FundingsHandler) Record(c *gin.Context) {
	var params FundingRecordParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	funding, err := h.svs.Record(reqCtx, service.RecordFundingArgs{
		CustomerID: params.CustomerID,
		Amount:     params.Amount,
		Platform:   domain.FundingPlatform(params.Platform),
		Status:     domain.FundingStatus(params.Status),
		Reference:  params.Reference,
		Fee:        params.Fee,
		Error:      params.Error,
		Rate:       params.Rate,
	})
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, newFundingResponse(funding))
}

// Index GET RouteGroup + FundingsRoute.
func (h *FundingsHandler) Index(c *gin.Context) {
	limit, ok := parseLimitQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	fundings, err := h.svs.List(reqCtx, limit)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	response := make([]FundingResponse, len(fundings))
	for i := range fundings {
		response[i] = newFundingResponse(&fundings[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + FundingRoute.
func (h *FundingsHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	funding, err := h.svs.GetByID(reqCtx, id)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, newFundingResponse(funding))
}

// ForceComplete POST RouteGroup + FundingCompleteRoute. Ручное завершение
// неуспешного пополнения оператором после сверки со шлюзом.
func (h *FundingsHandler) ForceComplete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	funding, err := h.svs.ForceComplete(reqCtx, id)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, newFundingResponse(funding))
}
