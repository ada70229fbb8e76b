package models

import "time"

// Comment is an adjacency-list node: root comments have a nil ParentID,
// replies point at an earlier comment on the same movie.
type Comment struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CommentText string    `json:"comment_text" gorm:"not null;type:text"`
	MovieID     int64     `json:"movie_id" gorm:"not null;index"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;index"`
	ParentID    *int64    `json:"parent_comment_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User    User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie   Movie     `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Replies []Comment `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
