package models

// PeerTradeRow is the canonical output row for the peer-trade dialect.
// The struct tag order fixes the output column order regardless of how
// the source file arranged its columns.
type PeerTradeRow struct {
	OrderNumber string `csv:"Order Number"`
	Description string `csv:"Description"`
	CreatedTime string `csv:"Created Time"`
	Notes       string `csv:"Notes"`
	Amount      string `csv:"Amount"`
	Income      bool   `csv:"Income"`
	Expense     bool   `csv:"Expense"`
}

// BankStatementRow is the canonical output row for the bank-statement
// dialect. Date is an ISO-8601 calendar date, so lexical order equals
// chronological order. Value uses "." as decimal separator with an
// optional leading "-".
type BankStatementRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Value       string `csv:"Value"`
}
