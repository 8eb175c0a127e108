package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select("id", "name", "deal_price", "deal_start_time", "deal_end_time").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	query, args = r.qb.Select("id", "product_id", "size", "price").
		From("product_variations").
		Where(sq.Eq{"product_id": productID}).
		OrderBy("id").
		MustSql()

	var variations []Variation
	if err := r.selectContext(ctx, &variations, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to get variations: %w", err)
	}

	return ProductToEntity(product, variations), nil
}

// SaveProduct используется для наполнения каталога.
func (r *postgresRepo) SaveProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	var dealStart, dealEnd sql.NullTime
	if p.DealStartTime != nil {
		dealStart = sql.NullTime{Time: p.DealStartTime.UTC(), Valid: true}
	}
	if p.DealEndTime != nil {
		dealEnd = sql.NullTime{Time: p.DealEndTime.UTC(), Valid: true}
	}

	query, args := r.qb.Insert("products").
		Columns("name", "deal_price", "deal_start_time", "deal_end_time").
		Values(p.Name, p.DealPrice, dealStart, dealEnd).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &p.ID, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to save product: %w", err)
	}

	for i, v := range p.Variations {
		query, args = r.qb.Insert("product_variations").
			Columns("product_id", "size", "price").
			Values(p.ID, v.Size, v.Price).
			Suffix("RETURNING id").
			MustSql()

		if err := r.getContext(ctx, &p.Variations[i].ID, query, args...); err != nil {
			return entities.Product{}, fmt.Errorf("failed to save variation: %w", err)
		}
	}
	return p, nil
}

func (r *postgresRepo) GetDiscount(ctx context.Context, code string) (entities.DiscountCode, error) {
	query, args := r.qb.Select("code", "percentage", "expires_at").
		From("discount_codes").
		Where(sq.Eq{"code": code}).
		MustSql()

	var discount DiscountCode
	err := r.getContext(ctx, &discount, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.DiscountCode{}, entities.ErrDiscountInvalid
	}
	if err != nil {
		return entities.DiscountCode{}, fmt.Errorf("failed to get discount: %w", err)
	}
	return DiscountToEntity(discount), nil
}

// SaveDiscount создаёт код или перезаписывает существующий.
func (r *postgresRepo) SaveDiscount(ctx context.Context, d entities.DiscountCode) error {
	query, args := r.qb.Insert("discount_codes").
		Columns("code", "percentage", "expires_at").
		Values(d.Code, d.Percentage, d.ExpiresAt.UTC()).
		Suffix("ON CONFLICT (code) DO UPDATE SET percentage = EXCLUDED.percentage, expires_at = EXCLUDED.expires_at").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isCheckViolation(err) {
		return entities.ErrInvalidInput
	}
	if err != nil {
		return fmt.Errorf("failed to save discount: %w", err)
	}
	return nil
}

