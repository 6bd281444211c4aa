package billing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-till/internal/common"
	"github.com/noah-isme/backend-till/internal/obs"
)

// Handler exposes the bill computation endpoints.
type Handler struct {
	Svc *Service
	Log zerolog.Logger
}

type billRequest struct {
	Basket []int64 `json:"basket"`
}

// Compute handles POST /api/v1/bills.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "billing service not configured", nil)
		return
	}
	var req billRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, common.PayloadTooLarge(err))
			return
		}
		h.writeError(w, common.BadRequest("invalid request body", err))
		return
	}
	result, err := h.Svc.Compute(req.Basket)
	if err != nil {
		if obs.BillsComputedTotal != nil {
			obs.BillsComputedTotal.WithLabelValues("error").Inc()
		}
		h.writeError(w, err)
		return
	}

	if obs.BillsComputedTotal != nil {
		obs.BillsComputedTotal.WithLabelValues("ok").Inc()
	}
	if obs.BillLines != nil {
		obs.BillLines.Observe(float64(len(result.Lines)))
	}
	if obs.UnknownSKUDroppedTotal != nil && result.Dropped > 0 {
		obs.UnknownSKUDroppedTotal.Add(float64(result.Dropped))
	}

	billID := uuid.NewString()
	h.Log.Debug().
		Str("bill_id", billID).
		Int("basket_size", len(req.Basket)).
		Int("lines", len(result.Lines)).
		Int("dropped", result.Dropped).
		Int64("grand_total", result.GrandTotal).
		Msg("bill_computed")

	common.JSON(w, http.StatusOK, map[string]any{
		"billId": billID,
		"data":   result,
	})
}

// Items handles GET /api/v1/items.
func (h *Handler) Items(w http.ResponseWriter, _ *http.Request) {
	if h.Svc == nil || h.Svc.Items == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.Items.Items()})
}

// Discounts handles GET /api/v1/discounts.
func (h *Handler) Discounts(w http.ResponseWriter, _ *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "billing service not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.Discounts.Rules()})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := appErr.Code
		if code == "" {
			code = "INTERNAL"
		}
		common.JSONError(w, status, code, appErr.Message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unexpected error", nil)
}
