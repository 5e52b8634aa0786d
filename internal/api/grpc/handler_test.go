package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	convergepb "github.com/ppalavilli/ElavonConvergeProcessor/api/converge/v1"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/converge"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/mapper"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository/memory"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/service"
	"github.com/ppalavilli/ElavonConvergeProcessor/platform/observability"
)

type recordingListener struct {
	mu         sync.Mutex
	requestIDs []string
}

func (l *recordingListener) OnResponse(_ context.Context, _ *model.Transaction, requestID string, _ *model.ResponseError) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requestIDs = append(l.requestIDs, requestID)
	return nil
}

func (l *recordingListener) last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.requestIDs) == 0 {
		return ""
	}
	return l.requestIDs[len(l.requestIDs)-1]
}

func newTestClient(t *testing.T) (convergepb.TransactionServiceClient, *recordingListener) {
	t.Helper()

	conn, listener := newTestConn(t)
	return convergepb.NewTransactionServiceClient(conn), listener
}

func newTestConn(t *testing.T) (*grpc.ClientConn, *recordingListener) {
	t.Helper()

	logger := zap.NewNop()
	manager := service.NewTransactionManager(logger, memory.NewRepository(), service.Dependencies{
		Notifier: service.NewLogDeclineNotifier(logger),
	})
	listener := &recordingListener{}

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer(grpc.UnaryInterceptor(observability.GRPCUnaryServerInterceptor("converge", logger)))
	convergepb.RegisterTransactionServiceServer(srv, NewHandler(logger, manager, mapper.DefaultRegistry(), listener))
	reflection.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, listener
}

func saleTx(amount int64) *convergepb.Transaction {
	return &convergepb.Transaction{
		Action: string(model.ActionSale),
		FundingSource: &convergepb.FundingSource{
			Type:      string(model.FundingSourceCreditDebit),
			EntryMode: string(model.EntryModeKeyed),
			Card: &convergepb.Card{
				Number:          "4111111111111111",
				ExpirationMonth: 10,
				ExpirationYear:  2030,
			},
		},
		Amounts: &convergepb.TransactionAmounts{Currency: "USD", OrderAmount: amount, TransactionAmount: amount},
	}
}

func TestHandler_ProcessAndGet(t *testing.T) {
	client, listener := newTestClient(t)
	ctx := context.Background()

	resp, err := client.Process(ctx, &convergepb.ProcessRequest{RequestId: "req-1", Transaction: saleTx(555)})
	require.NoError(t, err)
	require.True(t, resp.GetFound())
	require.Equal(t, "req-1", resp.GetRequestId())
	require.Equal(t, string(model.StatusCaptured), resp.GetTransaction().GetStatus())
	require.EqualValues(t, 100, resp.GetTransaction().GetAmounts().GetTransactionAmount())
	require.Empty(t, resp.GetTransaction().GetFundingSource().GetCard().GetNumber())
	require.NotNil(t, resp.GetTransaction().GetCreatedAt())
	require.Equal(t, "123456", resp.GetTransaction().GetProcessorResponse().GetApprovalCode())
	require.Equal(t, "req-1", listener.last())

	got, err := client.Get(ctx, &convergepb.GetRequest{TransactionId: resp.GetTransaction().GetId()})
	require.NoError(t, err)
	require.True(t, got.GetFound())
	require.Equal(t, resp.GetTransaction().GetId(), got.GetTransaction().GetId())
	require.NotEmpty(t, got.GetRequestId())
}

func TestHandler_ProcessKeepsOptionalAmounts(t *testing.T) {
	client, _ := newTestClient(t)

	tx := saleTx(777)
	tx.Amounts.TipAmount = wrapperspb.Int64(50)

	resp, err := client.Process(context.Background(), &convergepb.ProcessRequest{Transaction: tx})
	require.NoError(t, err)
	require.EqualValues(t, 50, resp.GetTransaction().GetAmounts().GetTipAmount().GetValue())
	require.EqualValues(t, 200, resp.GetTransaction().GetProcessorResponse().GetRemainingBalance().GetValue())
}

func TestHandler_RequestIDFromMetadata(t *testing.T) {
	client, listener := newTestClient(t)

	ctx := metadata.AppendToOutgoingContext(context.Background(), requestIDHeader, "from-md")
	resp, err := client.Process(ctx, &convergepb.ProcessRequest{Transaction: saleTx(1000)})
	require.NoError(t, err)
	require.Equal(t, "from-md", resp.GetRequestId())
	require.Equal(t, "from-md", listener.last())
}

func TestHandler_GetUnknown(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Get(context.Background(), &convergepb.GetRequest{TransactionId: uuid.New().String()})
	require.NoError(t, err)
	require.False(t, resp.GetFound())
	require.Nil(t, resp.GetTransaction())
}

func TestHandler_CaptureUpdateVoid(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	id := uuid.New().String()

	captured, err := client.Capture(ctx, &convergepb.AdjustRequest{
		TransactionId: id,
		Amounts:       &convergepb.TransactionAmounts{OrderAmount: 700, TransactionAmount: 700},
	})
	require.NoError(t, err)
	require.Equal(t, string(model.StatusCaptured), captured.GetTransaction().GetStatus())

	updated, err := client.Update(ctx, &convergepb.AdjustRequest{
		TransactionId: id,
		Amounts:       &convergepb.TransactionAmounts{OrderAmount: 800, TransactionAmount: 800},
		EmvData:       &convergepb.EMVData{EmvTags: map[string]string{"0x9F02": "000000000800"}},
	})
	require.NoError(t, err)
	require.Equal(t, string(model.StatusCaptured), updated.GetTransaction().GetStatus())
	require.EqualValues(t, 800, updated.GetTransaction().GetAmounts().GetTransactionAmount())
	require.Equal(t, "000000000800", updated.GetTransaction().GetFundingSource().GetEmvData().GetEmvTags()["0x9F02"])

	voided, err := client.Void(ctx, &convergepb.VoidRequest{TransactionId: uuid.New().String()})
	require.NoError(t, err)
	require.Equal(t, string(model.StatusVoided), voided.GetTransaction().GetStatus())
	require.EqualValues(t, 100, voided.GetTransaction().GetAmounts().GetOrderAmount())
}

func TestHandler_ErrorCodes(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.Get(ctx, &convergepb.GetRequest{TransactionId: "not-a-uuid"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.Process(ctx, &convergepb.ProcessRequest{Transaction: saleTx(-1)})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	badID := saleTx(100)
	badID.Id = "nope"
	_, err = client.Process(ctx, &convergepb.ProcessRequest{Transaction: badID})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	giftcard := saleTx(100)
	giftcard.FundingSource.Type = string(model.FundingSourceGiftCard)
	_, err = client.BuildRequest(ctx, &convergepb.BuildRequestRequest{Operation: "auth", Transaction: giftcard})
	require.Equal(t, codes.Unimplemented, status.Code(err))

	ebt := &convergepb.Transaction{
		FundingSource: &convergepb.FundingSource{
			Type:       string(model.FundingSourceEBT),
			EntryMode:  string(model.EntryModeMagstripe),
			EbtDetails: &convergepb.EBTDetails{Type: string(model.EBTTypeCashBenefit)},
		},
	}
	_, err = client.BuildRequest(ctx, &convergepb.BuildRequestRequest{Operation: "sale", Transaction: ebt})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	chip := saleTx(100)
	chip.FundingSource.EntryMode = string(model.EntryModeChip)
	_, err = client.BuildRequest(ctx, &convergepb.BuildRequestRequest{Operation: "sale", Transaction: chip})
	require.Equal(t, codes.Unimplemented, status.Code(err))

	_, err = client.BuildRequest(ctx, &convergepb.BuildRequestRequest{Operation: "capture", Transaction: saleTx(100)})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHandler_BuildRequest(t *testing.T) {
	client, _ := newTestClient(t)

	tx := saleTx(1234)
	tx.FundingSource.Type = string(model.FundingSourceGiftCard)
	tx.Amounts.TipAmount = wrapperspb.Int64(200)

	resp, err := client.BuildRequest(context.Background(), &convergepb.BuildRequestRequest{Operation: "sale", Transaction: tx})
	require.NoError(t, err)
	require.Equal(t, string(mapper.MethodKeyedGiftcard), resp.GetMethod())
	require.Equal(t, string(converge.TypeGiftCardSale), resp.GetRequest().GetTransactionType())
	require.Equal(t, "12.34", resp.GetRequest().GetAmount())
	require.Equal(t, "2.00", resp.GetRequest().GetTipAmount())
	require.Contains(t, resp.GetXml(), "<ssl_transaction_type>egcsale</ssl_transaction_type>")
}

func TestHandler_ReflectionDescribesService(t *testing.T) {
	conn, _ := newTestConn(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := grpc_reflection_v1.NewServerReflectionClient(conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)

	err = stream.Send(&grpc_reflection_v1.ServerReflectionRequest{
		MessageRequest: &grpc_reflection_v1.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: "converge.v1.TransactionService",
		},
	})
	require.NoError(t, err)

	resp, err := stream.Recv()
	require.NoError(t, err)
	require.Nil(t, resp.GetErrorResponse())

	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.NotEmpty(t, files)

	var fd descriptorpb.FileDescriptorProto
	require.NoError(t, proto.Unmarshal(files[0], &fd))
	require.Equal(t, "converge/v1/transaction.proto", fd.GetName())
	require.Len(t, fd.GetService(), 1)

	var methods []string
	for _, m := range fd.GetService()[0].GetMethod() {
		methods = append(methods, m.GetName())
	}
	require.Equal(t, []string{"Process", "Capture", "Update", "Void", "Get", "BuildRequest"}, methods)
}

func TestTransactionFromPB(t *testing.T) {
	t.Run("nil gives zero transaction", func(t *testing.T) {
		tx, err := transactionFromPB(nil)
		require.NoError(t, err)
		require.Equal(t, model.Transaction{}, tx)
	})

	t.Run("empty id stays nil for generation", func(t *testing.T) {
		tx, err := transactionFromPB(saleTx(10))
		require.NoError(t, err)
		require.Equal(t, uuid.Nil, tx.ID)
		require.Nil(t, tx.Amounts.TipAmount)
		require.Equal(t, 2030, tx.FundingSource.Card.ExpirationYear)
	})

	t.Run("invalid id", func(t *testing.T) {
		in := saleTx(10)
		in.Id = "bad"
		_, err := transactionFromPB(in)
		require.ErrorIs(t, err, service.ErrInvalidArgument)
	})
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, codes.Unavailable, codeOf(service.ErrManagerClosed))
	require.Equal(t, codes.Aborted, codeOf(fmt.Errorf("save: %w", repository.ErrConflict)))
	require.Equal(t, codes.Internal, codeOf(errors.New("boom")))
	require.Equal(t, codes.DeadlineExceeded, codeOf(context.DeadlineExceeded))
}
