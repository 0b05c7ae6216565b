package main

import (
	"context"
	"fmt"

	"trivia-api/cmd/seed_initial_data/internal/seedmodels"
	"trivia-api/internal/domain"

	"go.uber.org/zap"
)

// categoryCache drops the category list the API serves from Redis.
type categoryCache interface {
	InvalidateCache(ctx context.Context)
}

type seeder struct {
	tm         domain.TransactionManager
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	cache      categoryCache // nil when Redis is not configured
	log        *zap.Logger
}

// seedAll seeds every category and returns how many failed. The cached
// category list is dropped afterwards so running APIs see new categories.
func (s *seeder) seedAll(ctx context.Context, seedCategories []seedmodels.SeedCategory) int {
	failed := 0
	for _, sc := range seedCategories {
		if err := s.seedCategory(ctx, sc); err != nil {
			failed++
			s.log.Error("Error seeding category, transaction rolled back", zap.String("category", sc.Type), zap.Error(err))
		}
	}

	if s.cache != nil {
		s.cache.InvalidateCache(ctx)
		s.log.Info("Category cache invalidated")
	}
	return failed
}

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// seedCategory creates the category when missing and inserts the questions
// it does not hold yet, all in one transaction. Running it twice is a no-op.
func (s *seeder) seedCategory(ctx context.Context, sc seedmodels.SeedCategory) error {
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		s.log.Info("Processing category", zap.String("type", sc.Type))

		category, err := s.categories.GetCategoryByType(ctx, sc.Type)
		if err != nil {
			return fmt.Errorf("error checking category %s: %w", sc.Type, err)
		}
		if category == nil {
			category = domain.NewCategory(sc.Type)
			if err := s.categories.SaveCategory(ctx, category); err != nil {
				return fmt.Errorf("failed to save category %s: %w", sc.Type, err)
			}
			s.log.Info("Created category.", zap.Int64("id", category.ID), zap.String("type", category.Type))
		} else {
			s.log.Info("Category exists.", zap.Int64("id", category.ID), zap.String("type", category.Type))
		}

		existing, err := s.questions.ListQuestionsByCategory(ctx, category.ID)
		if err != nil {
			return fmt.Errorf("error listing questions of %s: %w", sc.Type, err)
		}
		known := make(map[string]struct{}, len(existing))
		for _, q := range existing {
			known[q.Question] = struct{}{}
		}

		for _, sq := range sc.Questions {
			if _, ok := known[sq.Question]; ok {
				s.log.Debug("Question exists, skipping", zap.String("question_preview", firstN(sq.Question, 30)))
				continue
			}
			q := domain.NewQuestion(sq.Question, sq.Answer, category.ID, sq.Difficulty)
			if err := q.Validate(); err != nil {
				return fmt.Errorf("invalid seed question %q: %w", firstN(sq.Question, 30), err)
			}
			if err := s.questions.SaveQuestion(ctx, q); err != nil {
				return fmt.Errorf("failed to save question %q: %w", firstN(sq.Question, 30), err)
			}
			known[sq.Question] = struct{}{}
			s.log.Info("Created question.", zap.Int64("id", q.ID), zap.String("question_preview", firstN(q.Question, 30)))
		}
		return nil
	})
}
