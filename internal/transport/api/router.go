package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/giftbar/ledger/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	AdminLoginRoute = "/admin/login"

	AccountsRoute = "/accounts"
	AccountRoute  = "/accounts/:id"

	CustomersRoute = "/customers"
	CustomerRoute  = "/customers/:id"

	OperationsRoute = "/operations"
	OperationRoute  = "/operations/:id"

	StoresRoute        = "/stores"
	StoreBalancesRoute = "/stores/balances"

	PayoutsRoute = "/payouts"
	PayoutRoute  = "/payouts/:id"

	MovementsRoute     = "/movements"
	MovementGroupRoute = "/movements/groups/:id"

	FundingsRoute        = "/fundings"
	FundingRoute         = "/fundings/:id"
	FundingCompleteRoute = "/fundings/:id/complete"

	RateRoute = "/rate"

	PurchasesRoute       = "/purchases"
	PurchaseRoute        = "/purchases/:id"
	PurchaseAcceptRoute  = "/purchases/:id/accept"
	PurchaseClaimRoute   = "/purchases/:id/claim"
	PurchaseDeliverRoute = "/purchases/:id/deliver"
	PurchaseRejectRoute  = "/purchases/:id/reject"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	AccountService    AccountServicer
	OperationService  OperationServicer
	StoreService      StoreServicer
	PayoutService     PayoutServicer
	MovementService   MovementServicer
	FundingService    FundingServicer
	RateService       RateServicer
	PurchaseService   PurchaseServicer
	JWTSecretKey      []byte
	AdminPasswordHash string
	TokenTTL          time.Duration
}

func New(args RouterArgs) *gin.Engine {
	if valErr := registerValidators(); valErr != nil {
		panic(valErr)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors(args.Logger))

	authHandler := NewAuthHandler(args.AdminPasswordHash, args.JWTSecretKey, args.TokenTTL)
	accountsHandler := NewAccountsHandler(args.AccountService)
	operationsHandler := NewOperationsHandler(args.OperationService)
	storesHandler := NewStoresHandler(args.StoreService)
	payoutsHandler := NewPayoutsHandler(args.PayoutService)
	movementsHandler := NewMovementsHandler(args.MovementService)
	fundingsHandler := NewFundingsHandler(args.FundingService)
	rateHandler := NewRateHandler(args.RateService)
	purchasesHandler := NewPurchasesHandler(args.PurchaseService)

	api := r.Group(RouteGroup)

	api.POST(AdminLoginRoute, authHandler.Login)

	api.Use(middlewares.AdminRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного оператора.
	api.POST(AccountsRoute, accountsHandler.Create)
	api.GET(AccountsRoute, accountsHandler.Index)
	api.GET(AccountRoute, accountsHandler.Show)

	api.POST(CustomersRoute, accountsHandler.CreateCustomer)
	api.GET(CustomerRoute, accountsHandler.ShowCustomer)

	api.POST(OperationsRoute, operationsHandler.Create)
	api.GET(OperationsRoute, operationsHandler.Index)
	api.GET(OperationRoute, operationsHandler.Show)

	api.GET(StoresRoute, storesHandler.Index)
	api.GET(StoreBalancesRoute, storesHandler.Balances)

	api.POST(PayoutsRoute, payoutsHandler.Create)
	api.GET(PayoutsRoute, payoutsHandler.Index)
	api.GET(PayoutRoute, payoutsHandler.Show)

	api.GET(MovementsRoute, movementsHandler.Index)
	api.GET(MovementGroupRoute, movementsHandler.Group)

	api.POST(FundingsRoute, fundingsHandler.Record)
	api.GET(FundingsRoute, fundingsHandler.Index)
	api.GET(FundingRoute, fundingsHandler.Show)
	api.POST(FundingCompleteRoute, fundingsHandler.ForceComplete)

	api.GET(RateRoute, rateHandler.Show)
	api.PUT(RateRoute, rateHandler.Update)
	api.DELETE(RateRoute, rateHandler.Destroy)

	api.POST(PurchasesRoute, purchasesHandler.Create)
	api.GET(PurchaseRoute, purchasesHandler.Show)
	api.POST(PurchaseAcceptRoute, purchasesHandler.Accept)
	api.POST(PurchaseClaimRoute, purchasesHandler.Claim)
	api.POST(PurchaseDeliverRoute, purchasesHandler.Deliver)
	api.POST(PurchaseRejectRoute, purchasesHandler.Reject)

	return r
}
