package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RateHandler struct {
	svs RateServicer
}

func NewRateHandler(svs RateServicer) *RateHandler {
	return &RateHandler{
		svs: svs,
	}
}

type RateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// Show GET RouteGroup + RateRoute. Возвращает действующий курс USD→VES:
// операторский, если он задан, иначе котировку внешнего источника.
func (h *RateHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rate, err := h.svs.GetRate(reqCtx)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, RateResponse{Rate: rate})
}

type RateUpdateParams struct {
	Rate decimal.Decimal `binding:"required" json:"rate"`
}

// Update PUT RouteGroup + RateRoute. Задает операторский курс, который имеет
// приоритет над котировкой.
func (h *RateHandler) Update(c *gin.Context) {
	var params RateUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	systemRate, err := h.svs.SetOperatorRate(reqCtx, params.Rate)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, RateResponse{Rate: systemRate.Rate})
}

// Destroy DELETE RouteGroup + RateRoute. Снимает операторский курс, система
// возвращается к котировке внешнего источника.
func (h *RateHandler) Destroy(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.ClearOperatorRate(reqCtx); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.Status(http.StatusNoContent)
}
