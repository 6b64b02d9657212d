package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
)

type StoresHandler struct {
	svs StoreServicer
}

func NewStoresHandler(svs StoreServicer) *StoresHandler {
	return &StoresHandler{
		svs: svs,
	}
}

type StoreResponse struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	CreatedAt            time.Time       `json:"created_at"`
}

// Index GET RouteGroup + StoresRoute.
func (h *StoresHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stores, err := h.svs.ListStores(reqCtx)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	response := make([]StoreResponse, len(stores))
	for i, store := range stores {
		response[i] = StoreResponse{
			ID:                   store.ID,
			Name:                 store.Name,
			CommissionPercentage: store.CommissionPercentage,
			CreatedAt:            store.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

type StoreBalanceResponse struct {
	StoreID   int64           `json:"store_id"`
	StoreName string          `json:"store_name"`
	Balance   decimal.Decimal `json:"balance"`
}

// Balances GET RouteGroup + StoreBalancesRoute. Пересчитывает неоплаченный
// остаток по доставленным покупкам. Без store_id возвращает все магазины.
func (h *StoresHandler) Balances(c *gin.Context) {
	storeID, ok := parseStoreIDQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balances, err := h.svs.CalculateStoreBalance(reqCtx, storeID)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	if storeID != nil && len(balances) == 0 {
		_ = c.Error(domain.ErrRecordNotFound)
		c.Abort()
		return
	}

	response := make([]StoreBalanceResponse, len(balances))
	for i, balance := range balances {
		response[i] = StoreBalanceResponse{
			StoreID:   balance.StoreID,
			StoreName: balance.StoreName,
			Balance:   balance.Balance,
		}
	}
	c.JSON(http.StatusOK, response)
}
