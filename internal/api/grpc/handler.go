package grpcapi

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	convergepb "github.com/ppalavilli/ElavonConvergeProcessor/api/converge/v1"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/converge"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/mapper"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/service"
	"github.com/ppalavilli/ElavonConvergeProcessor/platform/observability"
)

// requestIDHeader - metadata ключ с correlation id, если его нет в теле запроса
const requestIDHeader = "x-request-id"

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

// Handler содержит gRPC-обработчики converge.v1.TransactionService.
// Тонкий слой: преобразует protobuf типы в модель, вызывает менеджер, переводит ошибки в gRPC статусы.
type Handler struct {
	convergepb.UnimplementedTransactionServiceServer
	logger   *zap.Logger
	svc      TransactionService
	builder  RequestBuilder
	listener service.Listener
}

// NewHandler создаёт handler. listener получает асинхронный ответ на каждую операцию.
func NewHandler(logger *zap.Logger, svc TransactionService, builder RequestBuilder, listener service.Listener) *Handler {
	return &Handler{
		logger:   logger,
		svc:      svc,
		builder:  builder,
		listener: listener,
	}
}

// Process обрабатывает новую транзакцию
func (h *Handler) Process(ctx context.Context, req *convergepb.ProcessRequest) (*convergepb.TransactionResponse, error) {
	requestID := h.requestID(ctx, req.GetRequestId())
	in, err := transactionFromPB(req.GetTransaction())
	if err != nil {
		return nil, h.toStatus(ctx, "Process", err)
	}

	tx, err := h.svc.ProcessTransaction(ctx, in, requestID, h.listener)
	if err != nil {
		return nil, h.toStatus(ctx, "Process", err)
	}
	return found(requestID, &tx), nil
}

// Capture переписывает суммы и захватывает транзакцию
func (h *Handler) Capture(ctx context.Context, req *convergepb.AdjustRequest) (*convergepb.TransactionResponse, error) {
	requestID := h.requestID(ctx, req.GetRequestId())
	tx, err := h.svc.CaptureTransaction(ctx, req.GetTransactionId(), adjustFromPB(req), requestID, h.listener)
	if err != nil {
		return nil, h.toStatus(ctx, "Capture", err)
	}
	return found(requestID, &tx), nil
}

// Update переписывает суммы без смены статуса
func (h *Handler) Update(ctx context.Context, req *convergepb.AdjustRequest) (*convergepb.TransactionResponse, error) {
	requestID := h.requestID(ctx, req.GetRequestId())
	tx, err := h.svc.UpdateTransaction(ctx, req.GetTransactionId(), adjustFromPB(req), requestID, h.listener)
	if err != nil {
		return nil, h.toStatus(ctx, "Update", err)
	}
	return found(requestID, &tx), nil
}

// Void отменяет транзакцию
func (h *Handler) Void(ctx context.Context, req *convergepb.VoidRequest) (*convergepb.TransactionResponse, error) {
	requestID := h.requestID(ctx, req.GetRequestId())
	tx, err := h.svc.VoidTransaction(ctx, req.GetTransactionId(), emvFromPB(req.GetEmvData()), requestID, h.listener)
	if err != nil {
		return nil, h.toStatus(ctx, "Void", err)
	}
	return found(requestID, &tx), nil
}

// Get возвращает транзакцию. Неизвестный ID - не ошибка: found = false.
func (h *Handler) Get(ctx context.Context, req *convergepb.GetRequest) (*convergepb.TransactionResponse, error) {
	requestID := h.requestID(ctx, req.GetRequestId())
	tx, err := h.svc.GetTransaction(ctx, req.GetTransactionId(), requestID, h.listener)
	if err != nil {
		return nil, h.toStatus(ctx, "Get", err)
	}
	return found(requestID, tx), nil
}

// BuildRequest строит запрос к Converge без обращения к хранилищу
func (h *Handler) BuildRequest(ctx context.Context, req *convergepb.BuildRequestRequest) (*convergepb.BuildRequestResponse, error) {
	op, err := mapper.ParseOperation(req.GetOperation())
	if err != nil {
		return nil, h.toStatus(ctx, "BuildRequest", err)
	}

	tx, err := transactionFromPB(req.GetTransaction())
	if err != nil {
		return nil, h.toStatus(ctx, "BuildRequest", err)
	}

	variant, err := h.builder.ForFundingSource(tx.FundingSource)
	if err != nil {
		return nil, h.toStatus(ctx, "BuildRequest", err)
	}

	built, err := h.builder.Map(op, tx)
	if err != nil {
		return nil, h.toStatus(ctx, "BuildRequest", err)
	}

	xml, err := built.Marshal()
	if err != nil {
		return nil, h.toStatus(ctx, "BuildRequest", err)
	}

	return &convergepb.BuildRequestResponse{
		Method:  string(variant.Method()),
		Request: convergeRequestToPB(built),
		Xml:     string(xml),
	}, nil
}

func adjustFromPB(req *convergepb.AdjustRequest) model.AdjustTransactionRequest {
	return model.AdjustTransactionRequest{
		Amounts: amountsFromPB(req.GetAmounts()),
		EMVData: emvFromPB(req.GetEmvData()),
	}
}

func found(requestID string, tx *model.Transaction) *convergepb.TransactionResponse {
	return &convergepb.TransactionResponse{
		RequestId:   requestID,
		Found:       tx != nil,
		Transaction: transactionToPB(tx),
	}
}

// requestID берёт correlation id из тела, затем из metadata, иначе генерирует новый
func (h *Handler) requestID(ctx context.Context, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(requestIDHeader); len(vals) > 0 && vals[0] != "" {
			return vals[0]
		}
	}
	return uuid.New().String()
}

// toStatus переводит доменную ошибку в gRPC статус
func (h *Handler) toStatus(ctx context.Context, method string, err error) error {
	code := codeOf(err)
	if code == codes.Internal {
		observability.LoggerFromContext(ctx, h.logger).Error("grpc call failed",
			zap.String("method", method),
			zap.Error(err),
		)
	}
	return status.Error(code, err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, mapper.ErrMissingFundingData),
		errors.Is(err, mapper.ErrUnknownOperation):
		return codes.InvalidArgument
	case errors.Is(err, mapper.ErrUnsupportedOperation),
		errors.Is(err, mapper.ErrUnsupportedPaymentMethod):
		return codes.Unimplemented
	case errors.Is(err, mapper.ErrProtocolRestriction):
		return codes.FailedPrecondition
	case errors.Is(err, repository.ErrConflict):
		return codes.Aborted
	case errors.Is(err, service.ErrManagerClosed):
		return codes.Unavailable
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}
