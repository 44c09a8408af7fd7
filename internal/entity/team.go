package entity

import (
	"time"

	"gorm.io/gorm"
)

type Base struct {
	ID        string         `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Team struct {
	Base

	Name         string `gorm:"unique"`
	Abbreviation string
	League       string `gorm:"index"`
	LogoURL      string
}

// TeamFollow indexes which fid follows which team, backing the followed-team
// filters of the mini app.
type TeamFollow struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	TeamID string `gorm:"primaryKey"`
	Team   Team   `gorm:"foreignKey:TeamID"`

	Fid int64 `gorm:"primaryKey"`
}
