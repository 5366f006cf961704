// Package api exposes the calculators over HTTP. Handlers decode JSON
// requests, screen inputs, call the calculation engine, and encode
// results. Errors come back as a JSON envelope with an appropriate
// status: 400 for malformed or out-of-range input, 404 for missing
// records, 422 when a calculation cannot produce a result, 429 for
// rate-limited contact submissions.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/calculation"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/config"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/store"
)

const maxBodyBytes = 1 << 20

// Handler holds the dependencies for the HTTP handlers.
type Handler struct {
	Engine *calculation.Engine
	Store  store.Store
	Logger *zap.Logger

	contactPerMinute int
	limiterMu        sync.Mutex
	contactLimiters  map[string]*rate.Limiter
}

// NewHandler creates a handler. contactPerMinute bounds contact-form
// submissions per client address.
func NewHandler(engine *calculation.Engine, st store.Store, logger *zap.Logger, contactPerMinute int) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if contactPerMinute <= 0 {
		contactPerMinute = 1
	}
	return &Handler{
		Engine:           engine,
		Store:            st,
		Logger:           logger,
		contactPerMinute: contactPerMinute,
		contactLimiters:  make(map[string]*rate.Limiter),
	}
}

// contactLimiter returns the token bucket for a client address, creating
// it on first use.
func (h *Handler) contactLimiter(remoteAddr string) *rate.Limiter {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	h.limiterMu.Lock()
	defer h.limiterMu.Unlock()
	limiter, ok := h.contactLimiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(h.contactPerMinute)), h.contactPerMinute)
		h.contactLimiters[host] = limiter
	}
	return limiter
}

// CalculateTax computes combined federal and provincial tax.
// POST /api/tax
func (h *Handler) CalculateTax(w http.ResponseWriter, r *http.Request) {
	var req TaxRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Province == "" {
		writeError(w, http.StatusBadRequest, "Province is required", nil)
		return
	}
	if req.AnnualIncome.IsNegative() || req.OtherDeductions.IsNegative() {
		writeError(w, http.StatusBadRequest, "Amounts cannot be negative", nil)
		return
	}

	result, ok := h.Engine.CalculateTax(req.AnnualIncome, req.OtherDeductions, req.Province)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "Calculation not ready for the given inputs", nil)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CalculateAffordability runs the home affordability projection.
// POST /api/affordability
func (h *Handler) CalculateAffordability(w http.ResponseWriter, r *http.Request) {
	var req domain.AffordabilityInputs
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := config.ValidateAffordabilityInputs(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid affordability inputs", err)
		return
	}
	writeJSON(w, http.StatusOK, h.Engine.CalculateAffordability(req))
}

// ComparePurchase runs the three-way large-purchase comparison.
// POST /api/purchase
func (h *Handler) ComparePurchase(w http.ResponseWriter, r *http.Request) {
	var req domain.PurchaseInputs
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := config.ValidatePurchaseInputs(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid purchase inputs", err)
		return
	}
	writeJSON(w, http.StatusOK, h.Engine.ComparePurchase(req))
}

// Amortize computes a periodic loan payment.
// POST /api/amortization
func (h *Handler) Amortize(w http.ResponseWriter, r *http.Request) {
	var req AmortizationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !req.Principal.IsPositive() || req.TermYears <= 0 {
		writeError(w, http.StatusBadRequest, "Principal and term must be positive", nil)
		return
	}
	if req.AnnualRatePercent.IsNegative() {
		writeError(w, http.StatusBadRequest, "Rate cannot be negative", nil)
		return
	}

	frequency := calculation.PaymentFrequency(req.Frequency)
	if req.Frequency == "" {
		frequency = calculation.FrequencyMonthly
	}
	switch frequency {
	case calculation.FrequencyMonthly, calculation.FrequencyBiweekly:
	default:
		writeError(w, http.StatusBadRequest, "Unknown payment frequency", nil)
		return
	}

	payment := calculation.PeriodicPayment(req.Principal, req.AnnualRatePercent, req.TermYears, frequency)
	periods := frequency.PeriodsPerYear()
	total := periods * req.TermYears

	writeJSON(w, http.StatusOK, AmortizationResponse{
		Payment:        payment,
		PeriodsPerYear: periods,
		TotalPeriods:   total,
		TotalPaid:      payment.Mul(decimal.NewFromInt(int64(total))),
	})
}

// PutTFSAProfile saves the account holder's profile.
// PUT /api/tfsa/{account}/profile
func (h *Handler) PutTFSAProfile(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	var profile domain.TFSAProfile
	if err := decodeJSON(w, r, &profile); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := config.ValidateTFSAInput(&config.TFSAInput{Profile: profile}); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid profile", err)
		return
	}

	if err := h.Store.SaveProfile(r.Context(), account, profile); err != nil {
		h.Logger.Error("failed to save profile", zap.String("account", account), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "saved"})
}

// GetTFSARoom computes contribution room from the stored profile and
// ledger.
// GET /api/tfsa/{account}/room
func (h *Handler) GetTFSARoom(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	profile, err := h.Store.LoadProfile(r.Context(), account)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Account profile not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	events, err := h.Store.ListEvents(r.Context(), account)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load ledger", err)
		return
	}

	var contributions []domain.ContributionRecord
	var withdrawals []domain.WithdrawalRecord
	for _, ev := range events {
		switch ev.Kind {
		case store.EventContribution:
			contributions = append(contributions, domain.ContributionRecord{Year: ev.Year, Amount: ev.Amount})
		case store.EventWithdrawal:
			withdrawals = append(withdrawals, domain.WithdrawalRecord{Year: ev.Year, Amount: ev.Amount})
		}
	}

	tracker := calculation.NewTFSATrackerFromLedger(profile, h.Engine.Tables().TFSALimits,
		contributions, withdrawals, calculation.NewZapLogger(h.Logger))

	writeJSON(w, http.StatusOK, TFSARoomResponse{
		Account: account,
		Profile: profile,
		Room:    tracker.State(),
	})
}

// AddTFSAEvent records a contribution or withdrawal.
// POST /api/tfsa/{account}/events
func (h *Handler) AddTFSAEvent(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	var req TFSAEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id, err := h.Store.AppendEvent(r.Context(), store.TFSAEvent{
		Account: account,
		Kind:    req.Kind,
		Year:    req.Year,
		Amount:  req.Amount,
	})
	if errors.Is(err, store.ErrInvalidEvent) {
		writeError(w, http.StatusBadRequest, "Invalid ledger event", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record event", err)
		return
	}

	writeJSON(w, http.StatusCreated, TFSAEventResponse{
		ID:     id,
		Kind:   req.Kind,
		Year:   req.Year,
		Amount: req.Amount,
	})
}

// ListTFSAEvents returns the account's ledger.
// GET /api/tfsa/{account}/events
func (h *Handler) ListTFSAEvents(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	events, err := h.Store.ListEvents(r.Context(), account)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load ledger", err)
		return
	}

	dtos := make([]TFSAEventResponse, len(events))
	for i, ev := range events {
		dtos[i] = TFSAEventResponse{ID: ev.ID, Kind: ev.Kind, Year: ev.Year, Amount: ev.Amount}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RemoveTFSAEvent deletes a mistaken ledger entry.
// DELETE /api/tfsa/{account}/events/{id}
func (h *Handler) RemoveTFSAEvent(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event id", err)
		return
	}

	err = h.Store.RemoveEvent(r.Context(), account, id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Event not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to remove event", err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "removed"})
}

// ListInputNamespaces returns all namespaces with saved inputs.
// GET /api/inputs
func (h *Handler) ListInputNamespaces(w http.ResponseWriter, r *http.Request) {
	namespaces, err := h.Store.ListNamespaces(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list namespaces", err)
		return
	}
	if namespaces == nil {
		namespaces = []string{}
	}
	writeJSON(w, http.StatusOK, namespaces)
}

// GetInputs returns the saved input document for a namespace.
// GET /api/inputs/{namespace}
func (h *Handler) GetInputs(w http.ResponseWriter, r *http.Request) {
	namespace := chi.URLParam(r, "namespace")

	payload, err := h.Store.LoadInputs(r.Context(), namespace)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No saved inputs for namespace", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load inputs", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// PutInputs saves an input document under a namespace.
// PUT /api/inputs/{namespace}
func (h *Handler) PutInputs(w http.ResponseWriter, r *http.Request) {
	namespace := chi.URLParam(r, "namespace")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read body", err)
		return
	}
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "Body must be valid JSON", nil)
		return
	}

	if err := h.Store.SaveInputs(r.Context(), namespace, body); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save inputs", err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "saved"})
}

// SubmitContact records a contact-form submission, rate limited.
// POST /api/contact
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if !h.contactLimiter(r.RemoteAddr).Allow() {
		writeError(w, http.StatusTooManyRequests, "Too many submissions, try again later", nil)
		return
	}

	var req ContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Name, email and message are required", nil)
		return
	}

	err := h.Store.SaveContact(r.Context(), store.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		h.Logger.Error("failed to save contact", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save contact", err)
		return
	}
	writeJSON(w, http.StatusAccepted, StatusResponse{Status: "received"})
}

// Provinces returns the supported province codes.
// GET /api/provinces
func (h *Handler) Provinces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Engine.Tables().ProvinceCodes())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
