package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/campaign-loader/internal/application/mocks"
	"github.com/DanielPopoola/campaign-loader/internal/application/services"
	"github.com/DanielPopoola/campaign-loader/internal/application/services/testhelpers"
	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/DanielPopoola/campaign-loader/internal/infrastructure/marketing"
	"github.com/DanielPopoola/campaign-loader/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/campaign-loader/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PipelineIntegrationTestSuite struct {
	suite.Suite
	testDB   *testhelpers.TestDatabase
	repo     *postgres.LeadRepository
	client   *mocks.MockCampaignClient
	creds    *mocks.MockCredentialProvider
	limiter  *ratelimit.Limiter
	pipeline *services.PipelineService
}

func TestPipelineIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	suite.Run(t, new(PipelineIntegrationTestSuite))
}

func (suite *PipelineIntegrationTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.repo = postgres.NewLeadRepository(suite.testDB.DB)
}

func (suite *PipelineIntegrationTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *PipelineIntegrationTestSuite) SetupTest() {
	t := suite.T()
	suite.client = mocks.NewMockCampaignClient(t)
	suite.creds = mocks.NewMockCredentialProvider(t)

	limiter, err := ratelimit.New(
		ratelimit.Config{Capacity: 100, Window: time.Minute, Lockout: time.Millisecond},
		ratelimit.WithLogger(discardLogger()),
	)
	require.NoError(t, err)
	suite.limiter = limiter

	logger := discardLogger()
	codes := services.NewOfferCodeService(suite.repo, nil, logger)
	importer := services.NewImportService(suite.repo, suite.limiter, suite.creds, suite.client, logger)
	suite.pipeline = services.NewPipelineService(suite.repo, codes, importer,
		services.PipelineConfig{URLPolicy: testPolicy},
		logger,
	)
}

func (suite *PipelineIntegrationTestSuite) TearDownTest() {
	suite.testDB.CleanTables(suite.T())
}

// ============================================================================
// HAPPY PATH TESTS
// ============================================================================

func (suite *PipelineIntegrationTestSuite) Test_Run_EndToEnd() {
	ctx := context.Background()
	t := suite.T()

	brandRow := testhelpers.NewSaleRow(testPolicy.BrandDealerID)
	generalRow := testhelpers.NewSaleRow("dealer-2")
	limitedRow := testhelpers.NewSaleRow("dealer-3")
	noEmailRow := testhelpers.NewSaleRow("dealer-4")
	noEmailRow.Email = nil

	brandID := suite.testDB.InsertSale(t, brandRow)
	generalID := suite.testDB.InsertSale(t, generalRow)
	limitedID := suite.testDB.InsertSale(t, limitedRow)
	noEmailID := suite.testDB.InsertSale(t, noEmailRow)

	suite.creds.EXPECT().Token(mock.Anything).Return("tok", nil)
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", mock.MatchedBy(func(c domain.Contact) bool {
		return c.Email == *limitedRow.Email
	})).Return(nil, &marketing.APIError{StatusCode: http.StatusTooManyRequests}).Once()
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", mock.Anything).
		Return(&marketing.SubscribeResponse{Status: "success"}, nil).Times(2)

	result, err := suite.pipeline.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, result.PendingSales)
	assert.Equal(t, int64(4), result.UpdatedRows)
	assert.Equal(t, int64(4), result.VerifiedInvoices)
	require.NotNil(t, result.Import)
	assert.Equal(t, 3, result.Import.Total)
	assert.Equal(t, 2, result.Import.Succeeded)
	assert.Equal(t, 1, result.Import.RateLimited)
	assert.Equal(t, uint64(1), suite.limiter.Stats().Lockouts)

	brand := suite.testDB.GetSale(t, brandID)
	assert.Equal(t, "0", brand.NeedsProcess)
	require.NotNil(t, brand.OfferCode)
	assert.True(t, domain.IsOfferCode(*brand.OfferCode))
	assert.Equal(t, testPolicy.BrandURL+"/"+*brand.OfferCode, *brand.OfferCodeURL)
	assert.Equal(t, result.BatchID.String(), *brand.BatchID)
	assert.NotNil(t, brand.CampaignLoadedDate)

	general := suite.testDB.GetSale(t, generalID)
	assert.Equal(t, testPolicy.DefaultURL+"/"+*general.OfferCode, *general.OfferCodeURL)
	assert.NotNil(t, general.CampaignLoadedDate)

	limited := suite.testDB.GetSale(t, limitedID)
	assert.NotNil(t, limited.OfferCode)
	assert.Nil(t, limited.CampaignLoadedDate, "rate limited contacts are not marked loaded")

	noEmail := suite.testDB.GetSale(t, noEmailID)
	assert.NotNil(t, noEmail.OfferCode)
	assert.Nil(t, noEmail.CampaignLoadedDate)

	second, err := suite.pipeline.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.PendingSales, "processed rows are not picked up again")
}

func (suite *PipelineIntegrationTestSuite) Test_Run_SkipsStoredOfferCodes() {
	ctx := context.Background()
	t := suite.T()

	existing := testhelpers.NewSaleRow("dealer-1")
	existing.NeedsProcess = "0"
	existing.OfferCode = testhelpers.Ptr("AB3CDF")
	suite.testDB.InsertSale(t, existing)

	pending := testhelpers.NewSaleRow("dealer-1")
	pending.Email = nil
	pendingID := suite.testDB.InsertSale(t, pending)

	_, err := suite.pipeline.Run(ctx)
	require.NoError(t, err)

	got := suite.testDB.GetSale(t, pendingID)
	require.NotNil(t, got.OfferCode)
	assert.NotEqual(t, "AB3CDF", *got.OfferCode)
}
