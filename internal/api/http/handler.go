package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/api/http/middleware"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/converge"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/mapper"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/service"
	"github.com/ppalavilli/ElavonConvergeProcessor/platform/observability"
)

// maxBodyBytes - предел тела запроса
const maxBodyBytes = 1 << 20

// TransactionService - операции менеджера транзакций, которые вызывает транспорт
type TransactionService interface {
	ProcessTransaction(ctx context.Context, tx model.Transaction, requestID string, listener service.Listener) (model.Transaction, error)
	CaptureTransaction(ctx context.Context, transactionID string, adjust model.AdjustTransactionRequest, requestID string, listener service.Listener) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, adjust model.AdjustTransactionRequest, requestID string, listener service.Listener) (model.Transaction, error)
	VoidTransaction(ctx context.Context, transactionID string, emvData *model.EMVData, requestID string, listener service.Listener) (model.Transaction, error)
	GetTransaction(ctx context.Context, transactionID string, requestID string, listener service.Listener) (*model.Transaction, error)
}

// RequestBuilder строит запрос к Converge для транзакции (mapper.Registry)
type RequestBuilder interface {
	ForFundingSource(fs model.FundingSource) (mapper.Variant, error)
	Map(op mapper.Operation, t model.Transaction) (converge.Request, error)
}

// Handler содержит HTTP-обработчики транзакций.
// Зависит от менеджера транзакций, но не знает о хранилище и Kafka.
type Handler struct {
	logger   *zap.Logger
	svc      TransactionService
	builder  RequestBuilder
	listener service.Listener
}

// NewHandler создаёт HTTP handler. listener получает асинхронный ответ на каждую операцию.
func NewHandler(logger *zap.Logger, svc TransactionService, builder RequestBuilder, listener service.Listener) *Handler {
	return &Handler{
		logger:   logger,
		svc:      svc,
		builder:  builder,
		listener: listener,
	}
}

// VoidRequest - тело POST /transactions/{id}/void
type VoidRequest struct {
	EMVData *model.EMVData `json:"emv_data,omitempty"`
}

// BuildRequestResponse - ответ POST /requests/{operation}
type BuildRequestResponse struct {
	Method  mapper.Method    `json:"method"`
	Request converge.Request `json:"request"`
	XML     string           `json:"xml"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// PostTransactions обрабатывает POST /transactions - новая транзакция
func (h *Handler) PostTransactions(w http.ResponseWriter, r *http.Request) {
	var tx model.Transaction
	if !h.decode(w, r, &tx) {
		return
	}

	requestID := middleware.RequestIDFromContext(r.Context())
	result, err := h.svc.ProcessTransaction(r.Context(), tx, requestID, h.listener)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, result)
}

// GetTransaction обрабатывает GET /transactions/{id}
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())
	tx, err := h.svc.GetTransaction(r.Context(), chi.URLParam(r, "id"), requestID, h.listener)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if tx == nil {
		h.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "transaction not found", RequestID: requestID})
		return
	}
	h.writeJSON(w, r, http.StatusOK, tx)
}

// CaptureTransaction обрабатывает POST /transactions/{id}/capture
func (h *Handler) CaptureTransaction(w http.ResponseWriter, r *http.Request) {
	var adjust model.AdjustTransactionRequest
	if !h.decode(w, r, &adjust) {
		return
	}

	requestID := middleware.RequestIDFromContext(r.Context())
	tx, err := h.svc.CaptureTransaction(r.Context(), chi.URLParam(r, "id"), adjust, requestID, h.listener)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, tx)
}

// PatchTransaction обрабатывает PATCH /transactions/{id} - update сумм
func (h *Handler) PatchTransaction(w http.ResponseWriter, r *http.Request) {
	var adjust model.AdjustTransactionRequest
	if !h.decode(w, r, &adjust) {
		return
	}

	requestID := middleware.RequestIDFromContext(r.Context())
	tx, err := h.svc.UpdateTransaction(r.Context(), chi.URLParam(r, "id"), adjust, requestID, h.listener)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, tx)
}

// VoidTransaction обрабатывает POST /transactions/{id}/void. Тело необязательно.
func (h *Handler) VoidTransaction(w http.ResponseWriter, r *http.Request) {
	var body VoidRequest
	if !h.decodeOptional(w, r, &body) {
		return
	}

	requestID := middleware.RequestIDFromContext(r.Context())
	tx, err := h.svc.VoidTransaction(r.Context(), chi.URLParam(r, "id"), body.EMVData, requestID, h.listener)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, tx)
}

// PostRequest обрабатывает POST /requests/{operation} - построить запрос к Converge
func (h *Handler) PostRequest(w http.ResponseWriter, r *http.Request) {
	op, err := mapper.ParseOperation(chi.URLParam(r, "operation"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var tx model.Transaction
	if !h.decode(w, r, &tx) {
		return
	}

	variant, err := h.builder.ForFundingSource(tx.FundingSource)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	built, err := h.builder.Map(op, tx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	xml, err := built.Marshal()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, BuildRequestResponse{
		Method:  variant.Method(),
		Request: built,
		XML:     string(xml),
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	return h.decodeBody(w, r, v, false)
}

// decodeOptional как decode, но пустое тело (в том числе chunked) не ошибка
func (h *Handler) decodeOptional(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	return h.decodeBody(w, r, v, true)
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}, allowEmpty bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		h.log(r).Debug("JSON decode error", zap.Error(err))
		h.writeJSON(w, r, http.StatusBadRequest, errorResponse{
			Error:     "invalid JSON: " + err.Error(),
			RequestID: middleware.RequestIDFromContext(r.Context()),
		})
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		h.log(r).Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	h.writeJSON(w, r, code, errorResponse{
		Error:     err.Error(),
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log(r).Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) log(r *http.Request) *zap.Logger {
	return observability.LoggerFromContext(r.Context(), h.logger)
}

// statusOf переводит доменную ошибку в HTTP статус
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, mapper.ErrMissingFundingData),
		errors.Is(err, mapper.ErrUnknownOperation):
		return http.StatusBadRequest
	case errors.Is(err, mapper.ErrUnsupportedOperation),
		errors.Is(err, mapper.ErrUnsupportedPaymentMethod):
		return http.StatusNotImplemented
	case errors.Is(err, mapper.ErrProtocolRestriction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrManagerClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
