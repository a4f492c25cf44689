package ethereum

type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeReverted  Outcome = "reverted"
	OutcomeTimedOut  Outcome = "timed_out"
)

// ReceiptResult is the terminal result of waiting on a transaction receipt.
// Block fields are populated for confirmed and reverted outcomes.
type ReceiptResult struct {
	Outcome     Outcome
	BlockNumber uint64
	BlockHash   string
	GasUsed     string
	Reason      string
}
