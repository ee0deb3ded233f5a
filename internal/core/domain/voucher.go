package domain

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
)

type VoucherStatus string

const (
	VoucherAvailable VoucherStatus = "AVAILABLE"
	VoucherExpired   VoucherStatus = "EXPIRED"
)

type Voucher struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Value       float64
	ExpiredDate time.Time
	Status      VoucherStatus
	Quantity    int
	Version     int
}

const voucherCodeLen = 10

const voucherCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewVoucher builds an available voucher with a generated code.
func NewVoucher(name string, value float64, quantity int, expiredDate time.Time) *Voucher {
	return &Voucher{
		ID:          uuid.New(),
		Code:        GenerateVoucherCode(),
		Name:        name,
		Value:       value,
		ExpiredDate: expiredDate,
		Status:      VoucherAvailable,
		Quantity:    quantity,
		Version:     1,
	}
}

// GenerateVoucherCode returns a random 10 letter upper-case code.
func GenerateVoucherCode() string {
	buf := make([]byte, voucherCodeLen)
	_, _ = rand.Read(buf)

	for i, b := range buf {
		buf[i] = voucherCodeAlphabet[int(b)%len(voucherCodeAlphabet)]
	}

	return string(buf)
}

// DeriveStatus recomputes the status from quantity and expiration date.
// Expired vouchers never revert to available.
func (v *Voucher) DeriveStatus(today time.Time) VoucherStatus {
	if v.Quantity == 0 || v.ExpiredDate.Before(truncateToDay(today)) {
		return VoucherExpired
	}

	return v.Status
}

// IsRedeemable reports whether the voucher can still be attached to a booking.
func (v *Voucher) IsRedeemable(today time.Time) bool {
	if v.Status != VoucherAvailable || v.Quantity <= 0 {
		return false
	}

	return !v.ExpiredDate.Before(truncateToDay(today))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
