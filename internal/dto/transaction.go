package dto

// TransactionRequest creates a variable expense. Category is optional: when
// empty the categorizer resolves one from the description. Date accepts
// "YYYY-MM-DD" or "DD/MM/YYYY"; empty means today.
type TransactionRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
	Date        string  `json:"date,omitempty"`
}

// TransactionUpdate carries a partial edit; nil fields keep their stored
// value.
type TransactionUpdate struct {
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Date        *string  `json:"date,omitempty"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Source      string  `json:"category_source,omitempty"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
}

type ImportTransactionsRequest struct {
	Transactions []TransactionRequest `json:"transactions"`
}

// ImportTransactionsResponse reports how many rows were stored and which
// ones were skipped (with the reason), e.g. an unparseable date.
type ImportTransactionsResponse struct {
	Imported int                   `json:"imported"`
	Skipped  []SkippedTransaction  `json:"skipped,omitempty"`
	Stored   []TransactionResponse `json:"stored"`
}

type SkippedTransaction struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type ParseExpenseRequest struct {
	Input string `json:"input"`
}

type ParseExpenseResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Source      string  `json:"category_source"`
}
