package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedByExpert returns a GORM scope that filters rows by expert_id.
func OwnedByExpert(expertID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("expert_id = ?", expertID)
	}
}

// ActiveExperts returns a GORM scope that keeps only approved directory entries.
func ActiveExperts() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", "active")
	}
}
