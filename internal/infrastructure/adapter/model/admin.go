package model

// Admin represents the database model for admin credentials
type Admin struct {
	ID       string `gorm:"primaryKey;size:36"`
	User     string `gorm:"uniqueIndex;not null;size:255"`
	Password string `gorm:"not null;size:255"`
}

// TableName specifies the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
