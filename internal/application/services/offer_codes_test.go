package services_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/DanielPopoola/campaign-loader/internal/application"
	"github.com/DanielPopoola/campaign-loader/internal/application/mocks"
	"github.com/DanielPopoola/campaign-loader/internal/application/services"
	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seededGenerator() *domain.CodeGenerator {
	return domain.NewCodeGenerator(rand.New(rand.NewPCG(7, 11)))
}

func TestOfferCodeService_Generate_RegeneratesOnlyTheShortfall(t *testing.T) {
	repo := mocks.NewMockOfferCodeRepository(t)
	service := services.NewOfferCodeService(repo, seededGenerator(), discardLogger())

	const want = 10
	stored := make(map[string]struct{})
	var rounds [][]string

	repo.EXPECT().ExistingOfferCodes(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, codes []string) (map[string]struct{}, error) {
			rounds = append(rounds, append([]string(nil), codes...))
			existing := make(map[string]struct{})
			if len(rounds) == 1 {
				// the datastore already holds three of the first candidates
				for _, c := range codes[:3] {
					existing[c] = struct{}{}
					stored[c] = struct{}{}
				}
			}
			return existing, nil
		})

	codes, err := service.Generate(context.Background(), want)
	require.NoError(t, err)

	require.Len(t, codes, want)
	require.Len(t, rounds, 2)
	assert.Len(t, rounds[0], want)
	assert.Len(t, rounds[1], 3, "second round only covers the shortfall")

	seen := make(map[string]struct{}, want)
	for _, c := range codes {
		assert.True(t, domain.IsOfferCode(c), c)
		assert.NotContains(t, stored, c)
		assert.NotContains(t, seen, c)
		seen[c] = struct{}{}
	}
}

func TestOfferCodeService_Generate_ZeroOrNegative(t *testing.T) {
	repo := mocks.NewMockOfferCodeRepository(t)
	service := services.NewOfferCodeService(repo, seededGenerator(), discardLogger())

	for _, n := range []int{0, -3} {
		codes, err := service.Generate(context.Background(), n)
		require.NoError(t, err)
		assert.Empty(t, codes)
	}
	repo.AssertNotCalled(t, "ExistingOfferCodes", mock.Anything, mock.Anything)
}

func TestOfferCodeService_Generate_DatastoreErrorAborts(t *testing.T) {
	repo := mocks.NewMockOfferCodeRepository(t)
	service := services.NewOfferCodeService(repo, seededGenerator(), discardLogger())

	repo.EXPECT().ExistingOfferCodes(mock.Anything, mock.Anything).
		Return(nil, errors.New("too many connections")).Once()

	codes, err := service.Generate(context.Background(), 5)

	require.Error(t, err)
	assert.Nil(t, codes)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeFetchFailed, svcErr.Code)
}

func TestOfferCodeService_Generate_StopsOnCancelledContext(t *testing.T) {
	repo := mocks.NewMockOfferCodeRepository(t)
	service := services.NewOfferCodeService(repo, seededGenerator(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Generate(ctx, 5)

	require.ErrorIs(t, err, context.Canceled)
}
