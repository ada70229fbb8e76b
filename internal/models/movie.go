package models

import "time"

type Movie struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"size:100;not null"`
	Description string     `json:"description" gorm:"type:text"`
	ReleaseDate *time.Time `json:"release_date,omitempty" gorm:"type:date"`
	UserID      string     `json:"user_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User     User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Ratings  []Rating  `json:"ratings,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}
