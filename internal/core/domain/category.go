package domain

// CategoryType distinguishes income categories from expense categories.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// Category labels income and expense entries for budgeting and reporting.
type Category struct {
	CategoryID   string       `json:"categoryID"` // Primary Key (UUID)
	Name         string       `json:"name"`
	CategoryType CategoryType `json:"categoryType"`
	AuditFields
}
