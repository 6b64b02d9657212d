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

type PurchasesHandler struct {
	svs PurchaseServicer
}

func NewPurchasesHandler(svs PurchaseServicer) *PurchasesHandler {
	return &PurchasesHandler{
		svs: svs,
	}
}

type PurchaseCreateParams struct {
	CustomerID      int64           `binding:"required" json:"customer_id"`
	StoreID         int64           `binding:"required" json:"store_id"`
	GiftRecipientID *int64          `json:"gift_recipient_id"`
	Amount          decimal.Decimal `binding:"required" json:"amount"`
}

type PurchaseResponse struct {
	ID                   int64                 `json:"id"`
	CustomerID           int64                 `json:"customer_id"`
	StoreID              int64                 `json:"store_id"`
	GiftRecipientID      *int64                `json:"gift_recipient_id,omitempty"`
	Amount               decimal.Decimal       `json:"amount"`
	CommissionPercentage decimal.Decimal       `json:"commission_percentage"`
	Status               domain.PurchaseStatus `json:"status"`
	GiftExpiresAt        time.Time             `json:"gift_expires_at"`
	StorePaymentID       *int64                `json:"store_payment_id,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
}

func newPurchaseResponse(purchase *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:                   purchase.ID,
		CustomerID:           purchase.CustomerID,
		StoreID:              purchase.StoreID,
		GiftRecipientID:      purchase.GiftRecipientID,
		Amount:               purchase.Amount,
		CommissionPercentage: purchase.CommissionPercentage,
		Status:               purchase.Status,
		GiftExpiresAt:        purchase.GiftExpiresAt,
		StorePaymentID:       purchase.StorePaymentID,
		CreatedAt:            purchase.CreatedAt,
	}
}

// Create POST RouteGroup + PurchasesRoute. Создает покупку-подарок, списывая
// ее стоимость с баланса клиента.
func (h *PurchasesHandler) Create(c *gin.Context) {
	var params PurchaseCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	purchase, err := h.svs.CreateGift(reqCtx, service.CreateGiftArgs{
		CustomerID:      params.CustomerID,
		StoreID:         params.StoreID,
		GiftRecipientID: params.GiftRecipientID,
		Amount:          params.Amount,
	})
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, newPurchaseResponse(purchase))
}

// Show GET RouteGroup + PurchaseRoute.
func (h *PurchasesHandler) Show(c *gin.Context) {
	h.respond(c, h.svs.GetByID)
}

// Accept POST RouteGroup + PurchaseAcceptRoute. Получатель принимает подарок.
func (h *PurchasesHandler) Accept(c *gin.Context) {
	h.respond(c, h.svs.Accept)
}

// Claim POST RouteGroup + PurchaseClaimRoute. Получатель предъявляет подарок
// в магазине.
func (h *PurchasesHandler) Claim(c *gin.Context) {
	h.respond(c, h.svs.Claim)
}

// Deliver POST RouteGroup + PurchaseDeliverRoute. Магазин отдает подарок.
func (h *PurchasesHandler) Deliver(c *gin.Context) {
	h.respond(c, h.svs.Deliver)
}

// Reject POST RouteGroup + PurchaseRejectRoute. Отказ от подарка с частичным
// возвратом средств отправителю.
func (h *PurchasesHandler) Reject(c *gin.Context) {
	h.respond(c, h.svs.Reject)
}

func (h *PurchasesHandler) respond(
	c *gin.Context,
	fn func(ctx context.Context, id int64) (*domain.Purchase, error),
) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	purchase, err := fn(reqCtx, id)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, newPurchaseResponse(purchase))
}
