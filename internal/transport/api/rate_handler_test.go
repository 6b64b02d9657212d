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
	"github.com/giftbar/ledger/internal/transport/api/mocks"
	"github.com/giftbar/ledger/internal/transport/api/testutils"
	"github.com/giftbar/ledger/internal/transport/api/tokens"
)

type RateHandlerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	router          *gin.Engine
	mockRateService *mocks.MockRateServicer
	jwtToken        string
}

func TestRateHandlerSuite(t *testing.T) {
	suite.Run(t, new(RateHandlerTestSuite))
}

func (s *RateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRateService = mocks.NewMockRateServicer(s.mockCtrl)

	jwtSecret := []byte("super secret key")
	token, tokenErr := tokens.GenerateAdminJWT(time.Hour, jwtSecret)
	s.Require().NoError(tokenErr)
	s.jwtToken = token

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		RateService:  s.mockRateService,
		JWTSecretKey: jwtSecret,
	})
}

func (s *RateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RateHandlerTestSuite) TestShow() {
	s.mockRateService.EXPECT().
		GetRate(gomock.Any()).
		Return(decimal.RequireFromString("36.58"), nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + RateRoute,
	}, testutils.WithBearer(s.jwtToken))
	defer func() { _ = resp.Body.Close() }()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var response RateResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.True(decimal.RequireFromString("36.58").Equal(response.Rate))
}

func (s *RateHandlerTestSuite) TestUpdate() {
	s.mockRateService.EXPECT().
		SetOperatorRate(gomock.Any(), decimal.RequireFromString("40")).
		Return(&domain.SystemRate{ID: 1, Rate: decimal.RequireFromString("40")}, nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPut,
		URL:    RouteGroup + RateRoute,
		Body:   bytes.NewBufferString(`{"rate": "40"}`),
	}, testutils.WithJSON(), testutils.WithBearer(s.jwtToken))
	defer func() { _ = resp.Body.Close() }()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var response RateResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.True(decimal.RequireFromString("40").Equal(response.Rate))
}

func (s *RateHandlerTestSuite) TestUpdateNonPositive() {
	s.mockRateService.EXPECT().
		SetOperatorRate(gomock.Any(), decimal.RequireFromString("-1")).
		Return(nil, domain.NewValidationError("rate", "rate is not positive"))

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPut,
		URL:    RouteGroup + RateRoute,
		Body:   bytes.NewBufferString(`{"rate": "-1"}`),
	}, testutils.WithJSON(), testutils.WithBearer(s.jwtToken))
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *RateHandlerTestSuite) TestDestroy() {
	s.mockRateService.EXPECT().ClearOperatorRate(gomock.Any()).Return(nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodDelete,
		URL:    RouteGroup + RateRoute,
	}, testutils.WithBearer(s.jwtToken))
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusNoContent, resp.StatusCode)
}
