package learning

import (
	"time"

	"gorm.io/datatypes"
)

// Roadmap is a day-by-day learning plan generated for one user and topic.
// Progress holds the model-produced entries verbatim, in day-chunk order.
type Roadmap struct {
	ID        string         `gorm:"type:varchar(36);primaryKey;column:id" json:"-"`
	UserID    string         `gorm:"column:user_id;not null;index" json:"user_id"`
	Topic     string         `gorm:"column:topic;not null" json:"topic"`
	Duration  int            `gorm:"column:duration;not null" json:"duration"`
	Progress  datatypes.JSON `gorm:"column:progress" json:"progress"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime;index" json:"-"`
}

func (Roadmap) TableName() string { return "user_roadmaps" }
