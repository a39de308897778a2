package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/campaign-loader/internal/application"
	"github.com/DanielPopoola/campaign-loader/internal/domain"
)

// OfferCodeService produces offer codes that no stored row uses yet.
type OfferCodeService struct {
	repo      application.OfferCodeRepository
	generator *domain.CodeGenerator
	logger    *slog.Logger
}

func NewOfferCodeService(repo application.OfferCodeRepository, generator *domain.CodeGenerator, logger *slog.Logger) *OfferCodeService {
	if generator == nil {
		generator = domain.NewCodeGenerator(nil)
	}
	return &OfferCodeService{
		repo:      repo,
		generator: generator,
		logger:    logger,
	}
}

// Generate returns exactly n distinct codes absent from the datastore. Each round only
// generates the shortfall and checks it in one query. A datastore error ends generation.
func (s *OfferCodeService) Generate(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	accepted := make(map[string]struct{}, n)
	codes := make([]string, 0, n)

	for round := 1; len(codes) < n; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates := s.generator.Candidates(n-len(codes), accepted)
		existing, err := s.repo.ExistingOfferCodes(ctx, candidates)
		if err != nil {
			s.logger.Error("failed to check offer codes", "round", round, "error", err)
			return nil, application.NewFetchError("existing offer codes", err)
		}

		for _, code := range candidates {
			if _, taken := existing[code]; taken {
				continue
			}
			accepted[code] = struct{}{}
			codes = append(codes, code)
		}

		if len(existing) > 0 {
			s.logger.Debug("offer code collisions, regenerating",
				"round", round,
				"collisions", len(existing),
				"remaining", n-len(codes),
			)
		}
	}

	s.logger.Info("generated unique offer codes", "count", len(codes))
	return codes, nil
}
