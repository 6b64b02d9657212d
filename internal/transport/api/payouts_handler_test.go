package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/logger"
	"github.com/giftbar/ledger/internal/service"
	"github.com/giftbar/ledger/internal/transport/api/mocks"
	"github.com/giftbar/ledger/internal/transport/api/testutils"
	"github.com/giftbar/ledger/internal/transport/api/tokens"
)

type PayoutsHandlerTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	router            *gin.Engine
	mockPayoutService *mocks.MockPayoutServicer
	jwtToken          string
}

func TestPayoutsHandlerSuite(t *testing.T) {
	suite.Run(t, new(PayoutsHandlerTestSuite))
}

func (s *PayoutsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayoutService = mocks.NewMockPayoutServicer(s.mockCtrl)

	jwtSecret := []byte("super secret key")
	token, tokenErr := tokens.GenerateAdminJWT(time.Hour, jwtSecret)
	s.Require().NoError(tokenErr)
	s.jwtToken = token

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		PayoutService: s.mockPayoutService,
		JWTSecretKey:  jwtSecret,
	})
}

func (s *PayoutsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PayoutsHandlerTestSuite) postPayout(body string) *http.Response {
	return testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + PayoutsRoute,
		Body:   bytes.NewBufferString(body),
	}, testutils.WithJSON(), testutils.WithBearer(s.jwtToken))
}

func (s *PayoutsHandlerTestSuite) TestCreate() {
	s.mockPayoutService.EXPECT().
		Create(gomock.Any(), service.CreatePayoutArgs{
			StoreID:         3,
			OriginAccountID: 1,
			Amount:          decimal.RequireFromString("48.00"),
		}).
		Return(&domain.StorePayment{
			ID:              5,
			StoreID:         3,
			Amount:          decimal.RequireFromString("48.00"),
			Reference:       12,
			OriginAccountID: 1,
			Rate:            decimal.RequireFromString("1"),
		}, nil)

	resp := s.postPayout(`{"store_id": 3, "origin_account_id": 1, "amount": "48.00"}`)
	defer func() { _ = resp.Body.Close() }()

	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var response PayoutResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal("000012", response.Reference)
	s.True(decimal.RequireFromString("48.00").Equal(response.Amount))
}

func (s *PayoutsHandlerTestSuite) TestCreateAmountMismatch() {
	s.mockPayoutService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, &domain.AmountMismatchError{
			StoreID:   3,
			Requested: decimal.RequireFromString("48.01"),
			Owed:      decimal.RequireFromString("48.00"),
		})

	resp := s.postPayout(`{"store_id": 3, "origin_account_id": 1, "amount": "48.01"}`)
	defer func() { _ = resp.Body.Close() }()

	s.Require().Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	var response map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Contains(response["error"], "48.00")
}

func (s *PayoutsHandlerTestSuite) TestIndexFiltersByStore() {
	storeID := int64(3)
	s.mockPayoutService.EXPECT().
		List(gomock.Any(), &storeID, uint(0)).
		Return([]domain.StorePayment{{ID: 5, StoreID: 3}}, nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + PayoutsRoute + "?store_id=3",
	}, testutils.WithBearer(s.jwtToken))
	defer func() { _ = resp.Body.Close() }()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var response []PayoutResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Require().Len(response, 1)
	s.Equal(int64(5), response[0].ID)
}

func (s *PayoutsHandlerTestSuite) TestIndexBadStoreID() {
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + PayoutsRoute + "?store_id=abc",
	}, testutils.WithBearer(s.jwtToken))
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
