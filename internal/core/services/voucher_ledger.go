package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/scalable_field/internal/core/domain"
	"github.com/srgjo27/scalable_field/internal/core/ports"
	"github.com/srgjo27/scalable_field/internal/platform/logger"
)

const (
	availableVouchersKey = "vouchers:available"
	availableVouchersTTL = 5 * time.Minute
	availableVouchersMax = 20
)

// VoucherLedger owns voucher validity and quantity decrement. Quantity
// mutations go through the repository's conditional UPDATEs, so two bookings
// racing for the last unit can never both win.
type VoucherLedger struct {
	vouchers ports.VoucherRepository
	cache    *redis.Client
	log      *logger.Logger
}

func NewVoucherLedger(vouchers ports.VoucherRepository, cache *redis.Client, log *logger.Logger) *VoucherLedger {
	return &VoucherLedger{
		vouchers: vouchers,
		cache:    cache,
		log:      log,
	}
}

// CreateVoucher issues a new voucher with a generated unique code.
func (l *VoucherLedger) CreateVoucher(ctx context.Context, name string, value float64, quantity int, expiredDate time.Time) (*domain.Voucher, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: negative quantity", domain.ErrInvalidVoucher)
	}

	voucher := domain.NewVoucher(name, value, quantity, expiredDate)
	voucher.Status = voucher.DeriveStatus(time.Now())

	if err := l.vouchers.Create(ctx, voucher); err != nil {
		return nil, fmt.Errorf("failed to create voucher: %w", err)
	}

	l.invalidateCache(ctx)

	return voucher, nil
}

// ValidateAndReserve resolves the voucher ids and rejects the whole set if any
// voucher is expired, exhausted or already attached to another active booking.
// Quantity is not decremented here; Consume does that under an atomic guard.
func (l *VoucherLedger) ValidateAndReserve(ctx context.Context, voucherIDs []uuid.UUID) ([]domain.Voucher, error) {
	if len(voucherIDs) == 0 {
		return nil, nil
	}

	vouchers, err := l.vouchers.GetByIDs(ctx, voucherIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vouchers: %w", err)
	}

	if len(vouchers) != len(voucherIDs) {
		return nil, fmt.Errorf("%w: unknown voucher id", domain.ErrNotFound)
	}

	today := time.Now()

	for _, v := range vouchers {
		if !v.IsRedeemable(today) {
			return nil, fmt.Errorf("%w: voucher %s is expired or exhausted", domain.ErrInvalidVoucher, v.Code)
		}

		attached, err := l.vouchers.HasActiveAttachment(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check voucher attachment: %w", err)
		}

		if attached {
			return nil, fmt.Errorf("%w: voucher %s is attached to another booking", domain.ErrInvalidVoucher, v.Code)
		}
	}

	return vouchers, nil
}

// Consume decrements the voucher quantity by one. The repository flips the
// status to EXPIRED in the same statement when the last unit goes. Callers
// invoke this exactly once per voucher per successful booking save.
func (l *VoucherLedger) Consume(ctx context.Context, voucher domain.Voucher) error {
	if err := l.vouchers.Consume(ctx, voucher.ID); err != nil {
		return err
	}

	l.invalidateCache(ctx)

	return nil
}

// Release undoes a Consume when the booking save that followed it failed.
func (l *VoucherLedger) Release(ctx context.Context, voucher domain.Voucher) error {
	if err := l.vouchers.Release(ctx, voucher.ID); err != nil {
		return err
	}

	l.invalidateCache(ctx)

	return nil
}

// AvailableVouchers lists redeemable vouchers for the booking form, served
// from cache when fresh.
func (l *VoucherLedger) AvailableVouchers(ctx context.Context) ([]domain.Voucher, error) {
	if cached, err := l.cache.Get(ctx, availableVouchersKey).Result(); err == nil {
		var vouchers []domain.Voucher
		if err := json.Unmarshal([]byte(cached), &vouchers); err == nil {
			return vouchers, nil
		}
	}

	vouchers, err := l.vouchers.ListAvailable(ctx, availableVouchersMax)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}

	if payload, err := json.Marshal(vouchers); err == nil {
		if err := l.cache.Set(ctx, availableVouchersKey, payload, availableVouchersTTL).Err(); err != nil {
			l.log.Warnw("failed to cache available vouchers", "error", err)
		}
	}

	return vouchers, nil
}

func (l *VoucherLedger) invalidateCache(ctx context.Context) {
	if err := l.cache.Del(ctx, availableVouchersKey).Err(); err != nil {
		l.log.Warnw("failed to invalidate voucher cache", "error", err)
	}
}
