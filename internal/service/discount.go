package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
)

type DiscountRepo interface {
	// GetDiscount возвращает entities.ErrDiscountInvalid, если кода нет.
	GetDiscount(ctx context.Context, code string) (entities.DiscountCode, error)
	SaveDiscount(ctx context.Context, d entities.DiscountCode) error
}

const discountKeyPrefix = "discount:"

type discountService struct {
	logger *slog.Logger
	repo   DiscountRepo
	cache  Cache
	now    func() time.Time
}

func NewDiscountService(logger *slog.Logger, repo DiscountRepo, cache Cache) *discountService {
	return &discountService{
		logger: logger.With(slog.String("service", "discount")),
		repo:   repo,
		cache:  cache,
		now:    time.Now,
	}
}

// ValidateCode возвращает код скидки, если он существует и ещё не истёк.
// Запись кода кэшируется, срок действия проверяется при каждом вызове.
func (s *discountService) ValidateCode(ctx context.Context, code string) (entities.DiscountCode, error) {
	code = entities.NormalizeDiscountCode(code)
	if code == "" {
		return entities.DiscountCode{}, entities.ErrDiscountInvalid
	}

	d, err := s.lookup(ctx, code)
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if !d.Valid(s.now()) {
		return entities.DiscountCode{}, fmt.Errorf("%w: %s expired at %s", entities.ErrDiscountInvalid, d.Code, d.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return d, nil
}

func (s *discountService) CreateDiscount(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
	d.Code = entities.NormalizeDiscountCode(d.Code)
	if d.Code == "" || d.Percentage < 0 || d.Percentage > 100 {
		return entities.DiscountCode{}, fmt.Errorf("%w: percentage must be within 0..100", entities.ErrInvalidInput)
	}
	if !d.Valid(s.now()) {
		return entities.DiscountCode{}, fmt.Errorf("%w: expiry must be in the future", entities.ErrInvalidInput)
	}
	d.ExpiresAt = d.ExpiresAt.UTC()

	if err := s.repo.SaveDiscount(ctx, d); err != nil {
		return entities.DiscountCode{}, fmt.Errorf("failed to save discount: %w", err)
	}
	s.store(d)

	s.logger.InfoContext(ctx, "discount code created", slog.String("code", d.Code), slog.Int("percentage", d.Percentage))
	return d, nil
}

func (s *discountService) lookup(ctx context.Context, code string) (entities.DiscountCode, error) {
	if data, ok := s.cache.Get(discountKeyPrefix + code); ok {
		var d entities.DiscountCode
		if err := d.Unmarshal(data); err == nil {
			return d, nil
		}
		s.logger.Warn("broken discount cache entry", slog.String("code", code))
	}

	d, err := s.repo.GetDiscount(ctx, code)
	if errors.Is(err, entities.ErrDiscountInvalid) {
		return entities.DiscountCode{}, err
	}
	if err != nil {
		return entities.DiscountCode{}, fmt.Errorf("failed to get discount: %w", err)
	}

	s.store(d)
	return d, nil
}

func (s *discountService) store(d entities.DiscountCode) {
	data, err := d.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal discount", slog.String("code", d.Code), slog.Any("error", err))
		return
	}
	s.cache.Set(discountKeyPrefix+d.Code, data)
}
