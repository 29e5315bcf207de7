package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/domain/pricing"
	"printshop/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	maxRateTableWriteAttempts = 3
	maxPaperSizeMultiplier    = 10.0
)

// RateTableInput is the admin payload for a new RateTable version.
// A nil PaperSizeMultipliers keeps the current multipliers.
type RateTableInput struct {
	BlackWhite           float64
	Color                float64
	DoubleSided          float64
	PaperSizeMultipliers map[string]float64
	TaxPercentage        float64
}

//go:generate mockgen -source=pricing_usecase.go -destination=../adapter/http/handlers/mocks/pricing_usecase_mock.go -package=mocks

// IPricingUseCase exposes rate-table management and price quotes.
type IPricingUseCase interface {
	GetCurrent(ctx context.Context) (entities.RateTable, error)
	CurrentRates(ctx context.Context) (entities.RateTable, error)
	CalculatePrice(ctx context.Context, pageCount, copies int, color, sides, size string) (pricing.PriceBreakdown, error)
	UpdateRates(ctx context.Context, adminID string, in RateTableInput) (entities.RateTable, error)
	ListHistory(ctx context.Context) ([]entities.RateTable, error)
}

type PricingUseCase struct {
	repo  interfaces.IRateTableRepository
	cache interfaces.IRateTableCache
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

// NewPricingUseCase builds the use case. cache may be nil.
func NewPricingUseCase(repo interfaces.IRateTableRepository, cache interfaces.IRateTableCache) *PricingUseCase {
	return &PricingUseCase{repo: repo, cache: cache}
}

// GetCurrent serves the public rate card, going through the cache when one
// is configured.
func (u *PricingUseCase) GetCurrent(ctx context.Context) (entities.RateTable, error) {
	if u.cache != nil {
		rt, ok, err := u.cache.Get(ctx)
		if err != nil {
			log.Printf("[pricing][usecase] cache get failed err=%v", err)
		} else if ok {
			return rt, nil
		}
	}

	rt, err := u.CurrentRates(ctx)
	if err != nil {
		return entities.RateTable{}, err
	}
	u.refreshCache(ctx, rt)
	return rt, nil
}

// CurrentRates always reads the repository and creates the bootstrap
// default when no RateTable exists yet.
func (u *PricingUseCase) CurrentRates(ctx context.Context) (entities.RateTable, error) {
	rt, err := u.repo.GetCurrent(ctx)
	if err != nil {
		return entities.RateTable{}, upstream("load current rate table", err)
	}
	if rt.Version > 0 {
		return rt, nil
	}

	def := entities.DefaultRateTable()
	def.ID = uuid.NewString()
	def.LastModified = time.Now().UTC()

	created, err := u.repo.Create(ctx, def)
	if errors.Is(err, interfaces.ErrRateTableVersionConflict) {
		// Someone else bootstrapped first.
		rt, err = u.repo.GetCurrent(ctx)
		if err != nil {
			return entities.RateTable{}, upstream("reload current rate table", err)
		}
		if rt.Version == 0 {
			return entities.RateTable{}, ErrRateTableNotFound
		}
		return rt, nil
	}
	if err != nil {
		return entities.RateTable{}, upstream("bootstrap rate table", err)
	}
	log.Printf("[pricing][usecase] bootstrapped default rate table id=%s version=%d", created.ID, created.Version)
	return created, nil
}

func (u *PricingUseCase) CalculatePrice(ctx context.Context, pageCount, copies int, color, sides, size string) (pricing.PriceBreakdown, error) {
	rt, err := u.CurrentRates(ctx)
	if err != nil {
		return pricing.PriceBreakdown{}, err
	}
	return pricing.Estimate(
		pageCount,
		copies,
		pricing.ParseColorMode(color),
		pricing.ParseDuplexMode(sides),
		pricing.ParsePaperSize(size),
		rt,
	), nil
}

// UpdateRates appends a new RateTable version. Concurrent writers racing on
// the same version are retried against the newer current table.
func (u *PricingUseCase) UpdateRates(ctx context.Context, adminID string, in RateTableInput) (entities.RateTable, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return entities.RateTable{}, newValidationError("user_id", "is required")
	}
	multipliers, err := validateRateTableInput(in)
	if err != nil {
		return entities.RateTable{}, err
	}

	for attempt := 1; attempt <= maxRateTableWriteAttempts; attempt++ {
		current, err := u.repo.GetCurrent(ctx)
		if err != nil {
			return entities.RateTable{}, upstream("load current rate table", err)
		}

		next := entities.RateTable{
			ID:                   uuid.NewString(),
			Version:              current.Version + 1,
			BlackWhite:           in.BlackWhite,
			Color:                in.Color,
			DoubleSided:          in.DoubleSided,
			PaperSizeMultipliers: multipliers,
			TaxPercentage:        in.TaxPercentage,
			LastModified:         time.Now().UTC(),
			ModifiedBy:           adminID,
		}
		if next.PaperSizeMultipliers == nil {
			next.PaperSizeMultipliers = current.PaperSizeMultipliers
		}
		next = next.WithSupportedSizes()

		created, err := u.repo.Create(ctx, next)
		if errors.Is(err, interfaces.ErrRateTableVersionConflict) {
			log.Printf("[pricing][usecase] version conflict version=%d attempt=%d", next.Version, attempt)
			continue
		}
		if err != nil {
			return entities.RateTable{}, upstream("create rate table", err)
		}

		log.Printf("[pricing][usecase] rate table updated version=%d by=%s", created.Version, adminID)
		u.refreshCache(ctx, created)
		return created, nil
	}

	return entities.RateTable{}, upstream("create rate table", interfaces.ErrRateTableVersionConflict)
}

func (u *PricingUseCase) ListHistory(ctx context.Context) ([]entities.RateTable, error) {
	history, err := u.repo.ListHistory(ctx)
	if err != nil {
		return nil, upstream("list rate tables", err)
	}
	return history, nil
}

func (u *PricingUseCase) refreshCache(ctx context.Context, rt entities.RateTable) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Set(ctx, rt); err != nil {
		log.Printf("[pricing][usecase] cache set failed version=%d err=%v", rt.Version, err)
	}
}

func validateRateTableInput(in RateTableInput) (map[string]float64, error) {
	if in.BlackWhite < entities.MinBlackWhitePrice || in.BlackWhite > entities.MaxBlackWhitePrice {
		return nil, newValidationError("black_white", fmt.Sprintf("must be between %.1f and %.1f", entities.MinBlackWhitePrice, entities.MaxBlackWhitePrice))
	}
	if in.Color < entities.MinColorPrice || in.Color > entities.MaxColorPrice {
		return nil, newValidationError("color", fmt.Sprintf("must be between %.1f and %.1f", entities.MinColorPrice, entities.MaxColorPrice))
	}
	if in.DoubleSided < 0 || in.DoubleSided > entities.MaxDoubleSided {
		return nil, newValidationError("double_sided", fmt.Sprintf("must be between 0 and %.1f", entities.MaxDoubleSided))
	}
	if in.TaxPercentage < 0 || in.TaxPercentage > entities.MaxTaxPercentage {
		return nil, newValidationError("tax_percentage", fmt.Sprintf("must be between 0 and %.0f", entities.MaxTaxPercentage))
	}

	if in.PaperSizeMultipliers == nil {
		return nil, nil
	}
	out := make(map[string]float64, len(in.PaperSizeMultipliers))
	for size, m := range in.PaperSizeMultipliers {
		size = pricing.ParsePaperSize(size)
		if size == "" {
			return nil, newValidationError("paper_size_multipliers", "size name is required")
		}
		if m <= 0 || m > maxPaperSizeMultiplier {
			return nil, newValidationError("paper_size_multipliers", fmt.Sprintf("%s must be greater than 0 and at most %.0f", size, maxPaperSizeMultiplier))
		}
		out[size] = m
	}
	return out, nil
}
