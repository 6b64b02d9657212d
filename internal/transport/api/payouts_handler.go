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

type PayoutsHandler struct {
	svs PayoutServicer
}

func NewPayoutsHandler(svs PayoutServicer) *PayoutsHandler {
	return &PayoutsHandler{
		svs: svs,
	}
}

type PayoutCreateParams struct {
	StoreID         int64           `binding:"required" json:"store_id"`
	OriginAccountID int64           `binding:"required" json:"origin_account_id"`
	Amount          decimal.Decimal `binding:"required" json:"amount"`
}

type PayoutResponse struct {
	ID              int64           `json:"id"`
	StoreID         int64           `json:"store_id"`
	Amount          decimal.Decimal `json:"amount"`
	AmountLocal     decimal.Decimal `json:"amount_local"`
	Reference       string          `json:"reference"`
	OriginAccountID int64           `json:"origin_account_id"`
	Rate            decimal.Decimal `json:"rate"`
	CreatedAt       time.Time       `json:"created_at"`
}

func newPayoutResponse(payment *domain.StorePayment) PayoutResponse {
	return PayoutResponse{
		ID:              payment.ID,
		StoreID:         payment.StoreID,
		Amount:          payment.Amount,
		AmountLocal:     payment.AmountLocal(),
		Reference:       payment.ReferenceNumber(),
		OriginAccountID: payment.OriginAccountID,
		Rate:            payment.Rate,
		CreatedAt:       payment.CreatedAt,
	}
}

// Create POST RouteGroup + PayoutsRoute. Выплачивает магазину его текущий
// неоплаченный остаток. Сумма обязана совпасть с расчетной на момент
// проведения, иначе вернется 422 с актуальной суммой.
func (h *PayoutsHandler) Create(c *gin.Context) {
	var params PayoutCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := h.svs.Create(reqCtx, service.CreatePayoutArgs{
		StoreID:         params.StoreID,
		OriginAccountID: params.OriginAccountID,
		Amount:          params.Amount,
	})
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, newPayoutResponse(payment))
}

// Index GET RouteGroup + PayoutsRoute.
func (h *PayoutsHandler) Index(c *gin.Context) {
	storeID, ok := parseStoreIDQuery(c)
	if !ok {
		return
	}
	limit, ok := parseLimitQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payments, err := h.svs.List(reqCtx, storeID, limit)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	response := make([]PayoutResponse, len(payments))
	for i := range payments {
		response[i] = newPayoutResponse(&payments[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + PayoutRoute.
func (h *PayoutsHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := h.svs.GetByID(reqCtx, id)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, newPayoutResponse(payment))
}
