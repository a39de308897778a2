package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/campaign-loader/internal/application"
	"github.com/DanielPopoola/campaign-loader/internal/application/mocks"
	"github.com/DanielPopoola/campaign-loader/internal/application/services"
	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/DanielPopoola/campaign-loader/internal/infrastructure/marketing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var loadDay = time.Date(2025, 6, 3, 10, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeContacts(n int) []domain.Contact {
	contacts := make([]domain.Contact, 0, n)
	for i := range n {
		contacts = append(contacts, domain.Contact{
			Email:        fmt.Sprintf("c%d@example.com", i),
			FirstName:    "Pat",
			OfferCode:    fmt.Sprintf("AB%dCDF", i+2),
			OfferCodeURL: fmt.Sprintf("http://offers/AB%dCDF", i+2),
		})
	}
	return contacts
}

func success() *marketing.SubscribeResponse {
	return &marketing.SubscribeResponse{Status: "success", Message: "ok"}
}

type ImportServiceTestSuite struct {
	suite.Suite
	contacts    *mocks.MockContactRepository
	limiter     *mocks.MockRateLimiter
	credentials *mocks.MockCredentialProvider
	client      *mocks.MockCampaignClient
	service     *services.ImportService
	batchID     domain.BatchID
}

func TestImportServiceSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

func (suite *ImportServiceTestSuite) SetupTest() {
	t := suite.T()
	suite.contacts = mocks.NewMockContactRepository(t)
	suite.limiter = mocks.NewMockRateLimiter(t)
	suite.credentials = mocks.NewMockCredentialProvider(t)
	suite.client = mocks.NewMockCampaignClient(t)
	suite.batchID = domain.BatchID(25060310300012345)

	suite.service = services.NewImportService(
		suite.contacts,
		suite.limiter,
		suite.credentials,
		suite.client,
		discardLogger(),
		services.WithImportClock(func() time.Time { return loadDay }),
	)
}

// ============================================================================
// HAPPY PATH TESTS
// ============================================================================

func (suite *ImportServiceTestSuite) Test_Import_MixedOutcomes() {
	ctx := context.Background()
	t := suite.T()
	contacts := makeContacts(5)

	suite.contacts.EXPECT().FindBatchContacts(mock.Anything, suite.batchID).Return(contacts, nil).Once()
	suite.limiter.EXPECT().Wait(mock.Anything).Return(nil).Times(5)
	suite.credentials.EXPECT().Token(mock.Anything).Return("tok", nil).Times(5)

	suite.client.EXPECT().Subscribe(mock.Anything, "tok", contacts[0]).Return(success(), nil).Once()
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", contacts[1]).
		Return(nil, &marketing.APIError{StatusCode: http.StatusTooManyRequests, Message: "Too many requests"}).Once()
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", contacts[2]).Return(success(), nil).Once()
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", contacts[3]).
		Return(&marketing.SubscribeResponse{Status: "error", Message: "Invalid email address"}, nil).Once()
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", contacts[4]).Return(success(), nil).Once()

	suite.limiter.EXPECT().TriggerLockout().Return().Once()

	expectedCodes := []string{contacts[0].OfferCode, contacts[2].OfferCode, contacts[4].OfferCode}
	suite.contacts.EXPECT().MarkCampaignLoaded(mock.Anything, expectedCodes, loadDay).Return(int64(3), nil).Once()

	report, err := suite.service.Import(ctx, suite.batchID)
	require.NoError(t, err)

	assert.Equal(t, suite.batchID, report.BatchID)
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 3, report.Succeeded)
	assert.Equal(t, 1, report.RateLimited)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, expectedCodes, report.SucceededCodes)
	assert.Equal(t, int64(3), report.MarkedRows)
}

func (suite *ImportServiceTestSuite) Test_Import_CustomSuccessStatus() {
	ctx := context.Background()
	t := suite.T()
	contacts := makeContacts(1)

	service := services.NewImportService(
		suite.contacts, suite.limiter, suite.credentials, suite.client, discardLogger(),
		services.WithSuccessStatus("ok"),
		services.WithImportClock(func() time.Time { return loadDay }),
	)

	suite.contacts.EXPECT().FindBatchContacts(mock.Anything, suite.batchID).Return(contacts, nil)
	suite.limiter.EXPECT().Wait(mock.Anything).Return(nil)
	suite.credentials.EXPECT().Token(mock.Anything).Return("tok", nil)
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", contacts[0]).
		Return(&marketing.SubscribeResponse{Status: "ok"}, nil)
	suite.contacts.EXPECT().MarkCampaignLoaded(mock.Anything, []string{contacts[0].OfferCode}, loadDay).Return(int64(1), nil)

	report, err := service.Import(ctx, suite.batchID)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
}

// ============================================================================
// EDGE CASE TESTS
// ============================================================================

func (suite *ImportServiceTestSuite) Test_Import_NoContacts() {
	t := suite.T()
	suite.contacts.EXPECT().FindBatchContacts(mock.Anything, suite.batchID).Return(nil, nil).Once()

	report, err := suite.service.Import(context.Background(), suite.batchID)

	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.Empty(t, report.SucceededCodes)
	suite.limiter.AssertNotCalled(t, "Wait", mock.Anything)
}

func (suite *ImportServiceTestSuite) Test_Import_NoCredentialSkipsContact() {
	t := suite.T()
	contacts := makeContacts(2)

	suite.contacts.EXPECT().FindBatchContacts(mock.Anything, suite.batchID).Return(contacts, nil)
	suite.limiter.EXPECT().Wait(mock.Anything).Return(nil).Times(2)
	suite.credentials.EXPECT().Token(mock.Anything).
		Return("", fmt.Errorf("%w: status 500", marketing.ErrCredentialUnavailable)).Once()
	suite.credentials.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", contacts[1]).Return(success(), nil).Once()
	suite.contacts.EXPECT().MarkCampaignLoaded(mock.Anything, []string{contacts[1].OfferCode}, loadDay).Return(int64(1), nil)

	report, err := suite.service.Import(context.Background(), suite.batchID)

	require.NoError(t, err)
	assert.Equal(t, 1, report.SkippedNoCredential)
	assert.Equal(t, 1, report.Succeeded)
	suite.client.AssertNumberOfCalls(t, "Subscribe", 1)
}

func (suite *ImportServiceTestSuite) Test_Import_NothingSucceededSkipsUpdate() {
	t := suite.T()
	contacts := makeContacts(2)

	suite.contacts.EXPECT().FindBatchContacts(mock.Anything, suite.batchID).Return(contacts, nil)
	suite.limiter.EXPECT().Wait(mock.Anything).Return(nil).Times(2)
	suite.credentials.EXPECT().Token(mock.Anything).Return("tok", nil).Times(2)
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", mock.Anything).
		Return(nil, errors.New("error making request: connection refused")).Times(2)

	report, err := suite.service.Import(context.Background(), suite.batchID)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Failed)
	suite.contacts.AssertNotCalled(t, "MarkCampaignLoaded", mock.Anything, mock.Anything, mock.Anything)
	suite.limiter.AssertNotCalled(t, "TriggerLockout")
}

func (suite *ImportServiceTestSuite) Test_Import_UnauthorizedInvalidatesToken() {
	t := suite.T()
	contacts := makeContacts(1)

	suite.contacts.EXPECT().FindBatchContacts(mock.Anything, suite.batchID).Return(contacts, nil)
	suite.limiter.EXPECT().Wait(mock.Anything).Return(nil)
	suite.credentials.EXPECT().Token(mock.Anything).Return("stale", nil)
	suite.client.EXPECT().Subscribe(mock.Anything, "stale", contacts[0]).
		Return(nil, &marketing.APIError{StatusCode: http.StatusUnauthorized, Message: "invalid oauth token"})
	suite.credentials.EXPECT().Invalidate().Return().Once()

	report, err := suite.service.Import(context.Background(), suite.batchID)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
}

func (suite *ImportServiceTestSuite) Test_Import_RejectsZeroBatchID() {
	t := suite.T()

	report, err := suite.service.Import(context.Background(), 0)

	require.Error(t, err)
	assert.Nil(t, report)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidInput, svcErr.Code)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidBatchID))
	suite.contacts.AssertNotCalled(t, "FindBatchContacts", mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) Test_Import_FetchFailure() {
	t := suite.T()
	suite.contacts.EXPECT().FindBatchContacts(mock.Anything, suite.batchID).
		Return(nil, errors.New("connection reset")).Once()

	report, err := suite.service.Import(context.Background(), suite.batchID)

	require.Error(t, err)
	assert.Nil(t, report)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeFetchFailed, svcErr.Code)
}

func (suite *ImportServiceTestSuite) Test_Import_UpdateFailureIsReturned() {
	t := suite.T()
	contacts := makeContacts(1)

	suite.contacts.EXPECT().FindBatchContacts(mock.Anything, suite.batchID).Return(contacts, nil)
	suite.limiter.EXPECT().Wait(mock.Anything).Return(nil)
	suite.credentials.EXPECT().Token(mock.Anything).Return("tok", nil)
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", contacts[0]).Return(success(), nil)
	suite.contacts.EXPECT().MarkCampaignLoaded(mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), errors.New("deadlock detected"))

	report, err := suite.service.Import(context.Background(), suite.batchID)

	require.Error(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.Succeeded)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodePersistFailed, svcErr.Code)
}

func (suite *ImportServiceTestSuite) Test_Import_CancelledRecordsAcceptedContacts() {
	t := suite.T()
	contacts := makeContacts(3)

	suite.contacts.EXPECT().FindBatchContacts(mock.Anything, suite.batchID).Return(contacts, nil)
	suite.limiter.EXPECT().Wait(mock.Anything).Return(nil).Once()
	suite.limiter.EXPECT().Wait(mock.Anything).Return(context.Canceled).Once()
	suite.credentials.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	suite.client.EXPECT().Subscribe(mock.Anything, "tok", contacts[0]).Return(success(), nil).Once()
	suite.contacts.EXPECT().MarkCampaignLoaded(mock.Anything, []string{contacts[0].OfferCode}, loadDay).
		Return(int64(1), nil).Once()

	report, err := suite.service.Import(context.Background(), suite.batchID)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, int64(1), report.MarkedRows)
}
