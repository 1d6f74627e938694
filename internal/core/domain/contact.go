package domain

// Contact is the debtor or creditor of an obligation.
type Contact struct {
	ContactID string `json:"contactID"` // Primary Key (UUID)
	Name      string `json:"name"`
	Email     string `json:"email"` // Nullable
	Phone     string `json:"phone"` // Nullable
	AuditFields
}
