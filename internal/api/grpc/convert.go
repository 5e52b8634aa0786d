package grpcapi

import (
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	convergepb "github.com/ppalavilli/ElavonConvergeProcessor/api/converge/v1"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/converge"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/service"
)

// Преобразования protobuf <-> internal/model.
// Пустые строки и незаданные сообщения дают нулевые значения модели.

func transactionFromPB(in *convergepb.Transaction) (model.Transaction, error) {
	if in == nil {
		return model.Transaction{}, nil
	}

	var id uuid.UUID
	if in.GetId() != "" {
		parsed, err := uuid.Parse(in.GetId())
		if err != nil {
			return model.Transaction{}, fmt.Errorf("%w: transaction id %q", service.ErrInvalidArgument, in.GetId())
		}
		id = parsed
	}

	tx := model.Transaction{
		ID:                id,
		Action:            model.TransactionAction(in.GetAction()),
		FundingSource:     fundingSourceFromPB(in.GetFundingSource()),
		Amounts:           amountsFromPB(in.GetAmounts()),
		Status:            model.TransactionStatus(in.GetStatus()),
		ProcessorResponse: processorResponseFromPB(in.GetProcessorResponse()),
		Version:           in.GetVersion(),
	}
	if in.GetCreatedAt() != nil {
		tx.CreatedAt = in.GetCreatedAt().AsTime()
	}
	if in.GetUpdatedAt() != nil {
		tx.UpdatedAt = in.GetUpdatedAt().AsTime()
	}
	return tx, nil
}

func transactionToPB(tx *model.Transaction) *convergepb.Transaction {
	if tx == nil {
		return nil
	}
	out := &convergepb.Transaction{
		Id:                tx.ID.String(),
		Action:            string(tx.Action),
		FundingSource:     fundingSourceToPB(tx.FundingSource),
		Amounts:           amountsToPB(tx.Amounts),
		Status:            string(tx.Status),
		ProcessorResponse: processorResponseToPB(tx.ProcessorResponse),
		Version:           tx.Version,
	}
	if !tx.CreatedAt.IsZero() {
		out.CreatedAt = timestamppb.New(tx.CreatedAt)
	}
	if !tx.UpdatedAt.IsZero() {
		out.UpdatedAt = timestamppb.New(tx.UpdatedAt)
	}
	return out
}

func fundingSourceFromPB(in *convergepb.FundingSource) model.FundingSource {
	if in == nil {
		return model.FundingSource{}
	}
	fs := model.FundingSource{
		Type:      model.FundingSourceType(in.GetType()),
		EntryMode: model.EntryMode(in.GetEntryMode()),
		EMVData:   emvFromPB(in.GetEmvData()),
	}
	if c := in.GetCard(); c != nil {
		fs.Card = &model.Card{
			Number:          c.GetNumber(),
			Track1Data:      c.GetTrack1Data(),
			Track2Data:      c.GetTrack2Data(),
			Track3Data:      c.GetTrack3Data(),
			ExpirationMonth: int(c.GetExpirationMonth()),
			ExpirationYear:  int(c.GetExpirationYear()),
			Encrypted:       c.GetEncrypted(),
			NumberHashed:    c.GetNumberHashed(),
		}
	}
	if v := in.GetVerificationData(); v != nil {
		fs.VerificationData = &model.VerificationData{PIN: v.GetPin(), KeySerialNumber: v.GetKeySerialNumber()}
	}
	if e := in.GetEbtDetails(); e != nil {
		fs.EBTDetails = &model.EBTDetails{Type: model.EBTType(e.GetType())}
	}
	return fs
}

func fundingSourceToPB(fs model.FundingSource) *convergepb.FundingSource {
	out := &convergepb.FundingSource{
		Type:      string(fs.Type),
		EntryMode: string(fs.EntryMode),
		EmvData:   emvToPB(fs.EMVData),
	}
	if c := fs.Card; c != nil {
		out.Card = &convergepb.Card{
			Number:          c.Number,
			Track1Data:      c.Track1Data,
			Track2Data:      c.Track2Data,
			Track3Data:      c.Track3Data,
			ExpirationMonth: int32(c.ExpirationMonth),
			ExpirationYear:  int32(c.ExpirationYear),
			Encrypted:       c.Encrypted,
			NumberHashed:    c.NumberHashed,
		}
	}
	if v := fs.VerificationData; v != nil {
		out.VerificationData = &convergepb.VerificationData{Pin: v.PIN, KeySerialNumber: v.KeySerialNumber}
	}
	if e := fs.EBTDetails; e != nil {
		out.EbtDetails = &convergepb.EBTDetails{Type: string(e.Type)}
	}
	return out
}

func amountsFromPB(in *convergepb.TransactionAmounts) model.TransactionAmounts {
	if in == nil {
		return model.TransactionAmounts{}
	}
	a := model.TransactionAmounts{
		Currency:          in.GetCurrency(),
		OrderAmount:       in.GetOrderAmount(),
		TransactionAmount: in.GetTransactionAmount(),
	}
	if tip := in.GetTipAmount(); tip != nil {
		a.TipAmount = model.Int64(tip.GetValue())
	}
	return a
}

func amountsToPB(a model.TransactionAmounts) *convergepb.TransactionAmounts {
	out := &convergepb.TransactionAmounts{
		Currency:          a.Currency,
		OrderAmount:       a.OrderAmount,
		TransactionAmount: a.TransactionAmount,
	}
	if a.TipAmount != nil {
		out.TipAmount = wrapperspb.Int64(*a.TipAmount)
	}
	return out
}

func processorResponseFromPB(in *convergepb.ProcessorResponse) *model.ProcessorResponse {
	if in == nil {
		return nil
	}
	pr := &model.ProcessorResponse{
		ApprovalCode:   in.GetApprovalCode(),
		Status:         model.ProcessorStatus(in.GetStatus()),
		StatusCode:     in.GetStatusCode(),
		StatusMessage:  in.GetStatusMessage(),
		ApprovedAmount: in.GetApprovedAmount(),
		Acquirer:       model.Processor(in.GetAcquirer()),
		Processor:      model.Processor(in.GetProcessor()),
		EMVTags:        copyTags(in.GetEmvTags()),
		TransactionID:  in.GetTransactionId(),
	}
	if rb := in.GetRemainingBalance(); rb != nil {
		pr.RemainingBalance = model.Int64(rb.GetValue())
	}
	return pr
}

func processorResponseToPB(pr *model.ProcessorResponse) *convergepb.ProcessorResponse {
	if pr == nil {
		return nil
	}
	out := &convergepb.ProcessorResponse{
		ApprovalCode:   pr.ApprovalCode,
		Status:         string(pr.Status),
		StatusCode:     pr.StatusCode,
		StatusMessage:  pr.StatusMessage,
		ApprovedAmount: pr.ApprovedAmount,
		Acquirer:       string(pr.Acquirer),
		Processor:      string(pr.Processor),
		EmvTags:        copyTags(pr.EMVTags),
		TransactionId:  pr.TransactionID,
	}
	if pr.RemainingBalance != nil {
		out.RemainingBalance = wrapperspb.Int64(*pr.RemainingBalance)
	}
	return out
}

func emvFromPB(in *convergepb.EMVData) *model.EMVData {
	if in == nil {
		return nil
	}
	return &model.EMVData{EMVTags: copyTags(in.GetEmvTags())}
}

func emvToPB(e *model.EMVData) *convergepb.EMVData {
	if e == nil {
		return nil
	}
	return &convergepb.EMVData{EmvTags: copyTags(e.EMVTags)}
}

func convergeRequestToPB(r converge.Request) *convergepb.ConvergeRequest {
	return &convergepb.ConvergeRequest{
		TransactionType:  string(r.TransactionType),
		Amount:           r.Amount,
		TipAmount:        r.TipAmount,
		CardNumber:       r.CardNumber,
		ExpDate:          r.ExpDate,
		EncryptedTrack:   r.EncryptedTrack,
		PinBlock:         r.PinBlock,
		PinKsn:           r.PinKSN,
		KeyPointer:       r.KeyPointer,
		TransactionRefId: r.TransactionRefID,
	}
}

func copyTags(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}
