package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/srgjo27/scalable_field/internal/core/domain"
	"github.com/srgjo27/scalable_field/internal/core/services"
)

type VoucherHandler struct {
	ledger *services.VoucherLedger
}

func NewVoucherHandler(ledger *services.VoucherLedger) *VoucherHandler {
	return &VoucherHandler{ledger: ledger}
}

func (h *VoucherHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /vouchers", h.ListVouchers)
	mux.HandleFunc("POST /vouchers", h.CreateVoucher)
}

func (h *VoucherHandler) ListVouchers(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.ledger.AvailableVouchers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"vouchers": toVoucherViews(vouchers)})
}

type createVoucherRequest struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Quantity    int     `json:"quantity"`
	ExpiredDate string  `json:"expired_date"`
}

func (h *VoucherHandler) CreateVoucher(w http.ResponseWriter, r *http.Request) {
	var req createVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	expiredDate, err := time.Parse("2006-01-02", req.ExpiredDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid expired_date"})
		return
	}

	voucher, err := h.ledger.CreateVoucher(r.Context(), req.Name, req.Value, req.Quantity, expiredDate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVoucherView(*voucher))
}

type voucherView struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	ExpiredDate string  `json:"expired_date"`
	Status      string  `json:"status"`
	Quantity    int     `json:"quantity"`
}

func toVoucherView(v domain.Voucher) voucherView {
	return voucherView{
		ID:          v.ID.String(),
		Code:        v.Code,
		Name:        v.Name,
		Value:       v.Value,
		ExpiredDate: v.ExpiredDate.Format("2006-01-02"),
		Status:      string(v.Status),
		Quantity:    v.Quantity,
	}
}

func toVoucherViews(vouchers []domain.Voucher) []voucherView {
	views := make([]voucherView, 0, len(vouchers))
	for _, v := range vouchers {
		views = append(views, toVoucherView(v))
	}

	return views
}
