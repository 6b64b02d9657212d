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

type FundingsHandlerTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	router             *gin.Engine
	mockFundingService *mocks.MockFundingServicer
	jwtToken           string
}

func TestFundingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(FundingsHandlerTestSuite))
}

func (s *FundingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFundingService = mocks.NewMockFundingServicer(s.mockCtrl)

	jwtSecret := []byte("super secret key")
	token, tokenErr := tokens.GenerateAdminJWT(time.Hour, jwtSecret)
	s.Require().NoError(tokenErr)
	s.jwtToken = token

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		FundingService: s.mockFundingService,
		JWTSecretKey:   jwtSecret,
	})
}

func (s *FundingsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *FundingsHandlerTestSuite) postFunding(body string) *http.Response {
	return testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + FundingsRoute,
		Body:   bytes.NewBufferString(body),
	}, testutils.WithJSON(), testutils.WithBearer(s.jwtToken))
}

func (s *FundingsHandlerTestSuite) TestRecord() {
	s.mockFundingService.EXPECT().
		Record(gomock.Any(), service.RecordFundingArgs{
			CustomerID: 10,
			Amount:     decimal.RequireFromString("25"),
			Platform:   domain.PlatformStripe,
			Status:     domain.FundingStatusSuccessful,
			Reference:  "ch_1",
			Fee:        decimal.RequireFromString("1.05"),
		}).
		Return(&domain.Funding{
			ID:         4,
			CustomerID: 10,
			Amount:     decimal.RequireFromString("25"),
			Platform:   domain.PlatformStripe,
			Status:     domain.FundingStatusSuccessful,
			Reference:  "ch_1",
			Fee:        decimal.RequireFromString("1.05"),
		}, nil)

	resp := s.postFunding(
		`{"customer_id": 10, "amount": "25", "platform": "STRIPE",` +
			` "status": "SUCCESSFUL", "reference": "ch_1", "fee": "1.05"}`,
	)
	defer func() { _ = resp.Body.Close() }()

	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var response FundingResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal(int64(4), response.ID)
	s.Equal(domain.FundingStatusSuccessful, response.Status)
}

func (s *FundingsHandlerTestSuite) TestRecordDuplicateReference() {
	s.mockFundingService.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewValidationError("reference", "funding ch_1 already recorded"))

	resp := s.postFunding(
		`{"customer_id": 10, "amount": "25", "platform": "STRIPE",` +
			` "status": "SUCCESSFUL", "reference": "ch_1"}`,
	)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *FundingsHandlerTestSuite) TestRecordMissingReference() {
	resp := s.postFunding(`{"customer_id": 10, "amount": "25", "platform": "STRIPE", "status": "SUCCESSFUL"}`)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *FundingsHandlerTestSuite) TestForceComplete() {
	s.mockFundingService.EXPECT().
		ForceComplete(gomock.Any(), int64(4)).
		Return(&domain.Funding{ID: 4, Status: domain.FundingStatusSuccessful}, nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/fundings/4/complete",
	}, testutils.WithBearer(s.jwtToken))
	defer func() { _ = resp.Body.Close() }()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var response FundingResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal(domain.FundingStatusSuccessful, response.Status)
}
