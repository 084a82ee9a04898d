package models

// Sort orders a query by one column.
type Sort struct {
	Column string
	Desc   bool
}

func Asc(column string) Sort  { return Sort{Column: column} }
func Desc(column string) Sort { return Sort{Column: column, Desc: true} }

// ListQuery carries pagination query parameters; shared by handlers and services.
type ListQuery struct {
	Page  int    `form:"page"`  // 1-based; defaulted when 0
	Limit int    `form:"limit"` // page size; clamped by the service
	Sort  string `form:"sort"`  // "amount,-created_date"
}

// Page is the response envelope for list endpoints.
type Page[M any] struct {
	Items []M   `json:"items"`
	Total int64 `json:"total"` // total live rows, for pagination UIs
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
