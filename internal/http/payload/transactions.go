package payload

import (
	"regexp"

	"basepay/internal/core"

	"github.com/jellydator/validation"
)

var txHashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

type SubmitTransactionRequest struct {
	TxHash            string `json:"txHash"`
	Type              string `json:"type"`
	From              string `json:"from"`
	To                string `json:"to"`
	Amount            string `json:"amount"`
	Fee               string `json:"fee"`
	PaymentToken      string `json:"paymentToken"`
	ProductID         string `json:"productId"`
	ContentID         string `json:"contentId"`
	ContractProductID int64  `json:"contractProductId"`
}

func (s SubmitTransactionRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.TxHash, validation.Required, validation.Match(txHashRegex)),
		validation.Field(&s.Type, validation.Required, validation.In(
			string(core.TypePurchase),
			string(core.TypeTip),
			string(core.TypeRegister),
			string(core.TypeCreateProduct))),
		validation.Field(&s.From, validation.Required),
	)
}

func (s SubmitTransactionRequest) ToMessage() core.SubmitMessage {
	return core.SubmitMessage{
		TxHash:            s.TxHash,
		Type:              core.TransactionType(s.Type),
		From:              s.From,
		To:                s.To,
		Amount:            s.Amount,
		Fee:               s.Fee,
		PaymentToken:      s.PaymentToken,
		ProductID:         s.ProductID,
		ContentID:         s.ContentID,
		ContractProductID: s.ContractProductID,
	}
}

type OrderDataPayload struct {
	ProductID       string `json:"productId"`
	Seller          string `json:"seller"`
	Amount          string `json:"amount"`
	Fee             string `json:"fee"`
	DeliveryType    string `json:"deliveryType"`
	ShippingAddress string `json:"shippingAddress"`
}

type TipDataPayload struct {
	ContentID string `json:"contentId"`
	To        string `json:"to"`
	Amount    string `json:"amount"`
}

type StatusUpdateRequest struct {
	Status      string            `json:"status"`
	BlockNumber uint64            `json:"blockNumber"`
	BlockHash   string            `json:"blockHash"`
	GasUsed     string            `json:"gasUsed"`
	Error       string            `json:"error"`
	OrderData   *OrderDataPayload `json:"orderData"`
	TipData     *TipDataPayload   `json:"tipData"`
}

func (s StatusUpdateRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Status, validation.Required, validation.In(
			string(core.StatusPending),
			string(core.StatusConfirmed),
			string(core.StatusProcessed),
			string(core.StatusFailed))),
	)
}

func (s StatusUpdateRequest) ToMessage() core.StatusMessage {
	msg := core.StatusMessage{
		Status:      core.TransactionStatus(s.Status),
		BlockNumber: s.BlockNumber,
		BlockHash:   s.BlockHash,
		GasUsed:     s.GasUsed,
		Error:       s.Error,
	}

	if s.OrderData != nil {
		msg.OrderData = &core.OrderData{
			ProductID:       s.OrderData.ProductID,
			Seller:          s.OrderData.Seller,
			Amount:          s.OrderData.Amount,
			Fee:             s.OrderData.Fee,
			DeliveryType:    s.OrderData.DeliveryType,
			ShippingAddress: s.OrderData.ShippingAddress,
		}
	}

	if s.TipData != nil {
		msg.TipData = &core.TipData{
			ContentID: s.TipData.ContentID,
			To:        s.TipData.To,
			Amount:    s.TipData.Amount,
		}
	}

	return msg
}
