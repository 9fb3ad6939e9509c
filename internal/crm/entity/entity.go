package entity

import "gorm.io/gorm"

// AutoMigrate 自动迁移CRM快照表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// SAP快照
		&Customer{},
		&Order{},
		&Invoice{},
		&Delivery{},

		// 会员
		&Membership{},
		&MembershipTransaction{},
		&Campaign{},
	)
}
