package models

// Category is the database representation of a category row.
type Category struct {
	CategoryID   string `db:"category_id"`
	Name         string `db:"name"`
	CategoryType string `db:"category_type"`
	AuditFields
}

// Contact is the database representation of a contact row.
type Contact struct {
	ContactID string `db:"contact_id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	AuditFields
}
