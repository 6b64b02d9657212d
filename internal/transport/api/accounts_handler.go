package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
)

type AccountsHandler struct {
	svs AccountServicer
}

func NewAccountsHandler(svs AccountServicer) *AccountsHandler {
	return &AccountsHandler{
		svs: svs,
	}
}

type AccountCreateParams struct {
	Name     string          `binding:"required,min=1,max=128" json:"name"`
	Currency string          `binding:"required,currency"      json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

type AccountResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Currency  domain.Currency `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newAccountResponse(account *domain.FundAccount) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Currency:  account.Currency,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// Create POST RouteGroup + AccountsRoute.
func (h *AccountsHandler) Create(c *gin.Context) {
	var params AccountCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.svs.CreateAccount(reqCtx, repoargs.CreateAccount{
		Name:     params.Name,
		Currency: domain.Currency(params.Currency),
		Balance:  params.Balance,
	})
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, newAccountResponse(account))
}

// Index GET RouteGroup + AccountsRoute.
func (h *AccountsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	accounts, err := h.svs.ListAccounts(reqCtx)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	response := make([]AccountResponse, len(accounts))
	for i := range accounts {
		response[i] = newAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + AccountRoute.
func (h *AccountsHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.svs.GetAccount(reqCtx, id)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(account))
}

type CustomerCreateParams struct {
	Username string          `binding:"required,min=1,max=128" json:"username"`
	Balance  decimal.Decimal `json:"balance"`
}

type CustomerResponse struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Username:  customer.Username,
		Balance:   customer.Balance,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// CreateCustomer POST RouteGroup + CustomersRoute.
func (h *AccountsHandler) CreateCustomer(c *gin.Context) {
	var params CustomerCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.svs.CreateCustomer(reqCtx, repoargs.CreateCustomer{
		Username: params.Username,
		Balance:  params.Balance,
	})
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, newCustomerResponse(customer))
}

// ShowCustomer GET RouteGroup + CustomerRoute.
func (h *AccountsHandler) ShowCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.svs.GetCustomer(reqCtx, id)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, newCustomerResponse(customer))
}
