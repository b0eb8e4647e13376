package community

import "time"

type Community struct {
	ID          string    `gorm:"type:varchar(36);primaryKey;column:community_id" json:"community_id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description;not null" json:"description"`
	Creator     string    `gorm:"column:creator;not null;index" json:"creator"`
	Members     []string  `gorm:"-" json:"members"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Community) TableName() string { return "communities" }

// HasMember reports whether userID already belongs to c.
func (c *Community) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// Member is one row of the community membership join table.
type Member struct {
	CommunityID string    `gorm:"type:varchar(36);primaryKey;column:community_id" json:"community_id"`
	UserID      string    `gorm:"primaryKey;column:user_id;index" json:"user_id"`
	JoinedAt    time.Time `gorm:"column:joined_at;not null;index" json:"joined_at"`
}

func (Member) TableName() string { return "community_members" }
