package models

// UserModel mirrors the account record of the external identity provider.
// Rows are created by the sync-user endpoint; the id comes from the provider.
type UserModel struct {
	Base
	Email    string `json:"email"     gorm:"uniqueIndex;not null"`
	FullName string `json:"full_name"`
}

func (UserModel) TableName() string { return "users" }
