package models

// DashboardDataModel stores one named blob of dashboard state per user.
// Upserted on (user_id, data_type).
type DashboardDataModel struct {
	Base
	UserID   string                 `json:"user_id"   gorm:"not null;uniqueIndex:idx_dashboard_user_type"`
	DataType string                 `json:"data_type" gorm:"not null;uniqueIndex:idx_dashboard_user_type"`
	Data     map[string]interface{} `json:"data"      gorm:"type:longtext;serializer:json"`
}

func (DashboardDataModel) TableName() string { return "dashboard_data" }
