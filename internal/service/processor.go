package service

import (
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

// Суммы-триггеры симулятора процессора (minor units)
const (
	amountPartialApproval  int64 = 555
	amountDecline          int64 = 666
	amountRemainingBalance int64 = 777
)

const (
	approvalCode          = "123456"
	partialApprovedAmount = int64(100)
	remainingBalance      = int64(200)
	refundApprovedAmount  = int64(100)
	voidDefaultAmount     = int64(100)

	declineStatusCode    = "9999"
	declineStatusMessage = "Declined - la la la la la"
	declineEMVTag        = "0x8A"
	declineEMVTagValue   = "3531"
)

// simulateAuthorization применяет таблицу решений к AUTHORIZE/SALE.
// Меняет tx на месте (это рабочая копия менеджера), возвращает true при отказе.
func simulateAuthorization(tx *model.Transaction) (declined bool) {
	resp := &model.ProcessorResponse{
		ApprovalCode: approvalCode,
		Status:       model.ProcessorStatusSuccessful,
	}

	switch tx.Amounts.TransactionAmount {
	case amountPartialApproval:
		resp.ApprovedAmount = partialApprovedAmount
		resp.StatusMessage = "Partially Approved"
		tx.Amounts.TransactionAmount = partialApprovedAmount
		tx.Amounts.OrderAmount = partialApprovedAmount
		tx.Status = approvedStatus(tx.Action)
	case amountDecline:
		resp.ApprovedAmount = 0
		resp.StatusMessage = declineStatusMessage
		resp.StatusCode = declineStatusCode
		resp.EMVTags = map[string]string{declineEMVTag: declineEMVTagValue}
		tx.Status = model.StatusDeclined
		declined = true
	case amountRemainingBalance:
		resp.ApprovedAmount = tx.Amounts.TransactionAmount
		resp.StatusMessage = "Approved"
		resp.RemainingBalance = model.Int64(remainingBalance)
		tx.Status = approvedStatus(tx.Action)
	default:
		resp.ApprovedAmount = tx.Amounts.TransactionAmount
		resp.StatusMessage = "Approved"
		tx.Status = approvedStatus(tx.Action)
	}

	resp.TransactionID = tx.ID.String()
	resp.Acquirer = model.ProcessorChasePaymentech
	resp.Processor = model.ProcessorCreditcall
	tx.ProcessorResponse = resp

	return declined
}

// simulateRefund - возврат всегда одобряется на фиксированную сумму
func simulateRefund(tx *model.Transaction) {
	tx.Amounts.TransactionAmount = refundApprovedAmount
	tx.Amounts.OrderAmount = refundApprovedAmount
	tx.Status = model.StatusRefunded
	tx.ProcessorResponse = &model.ProcessorResponse{
		ApprovalCode:   approvalCode,
		Status:         model.ProcessorStatusSuccessful,
		StatusMessage:  "Successful",
		ApprovedAmount: refundApprovedAmount,
		TransactionID:  tx.ID.String(),
		Acquirer:       model.ProcessorRede,
		Processor:      model.ProcessorRede,
	}
}

func approvedStatus(action model.TransactionAction) model.TransactionStatus {
	if action == model.ActionAuthorize {
		return model.StatusAuthorized
	}
	return model.StatusCaptured
}
