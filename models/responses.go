package models

// Pagination describes the position of one page inside the full result set.
// Total is counted before the limit/offset window is applied.
type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasNext bool  `json:"has_next"`
}

// TransactionPage is the response body of the paginated transaction list.
type TransactionPage struct {
	Items      []Transaction `json:"items"`
	Pagination Pagination    `json:"pagination"`
}
