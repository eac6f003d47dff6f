package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Email     string `gorm:"type:varchar(254)" json:"email"`
	FirstName string `gorm:"type:varchar(50)" json:"first_name"`
	LastName  string `gorm:"type:varchar(50)" json:"last_name"`
	Bio       string `gorm:"type:varchar(2500)" json:"bio"`
	Website   string `gorm:"type:varchar(200)" json:"website"`
	Twitter   string `gorm:"type:varchar(100)" json:"twitter"`
	Github    string `gorm:"type:varchar(100)" json:"github"`
	Linkedin  string `gorm:"type:varchar(100)" json:"linkedin"`
	Location  string `gorm:"type:varchar(100)" json:"location"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// DisplayName 优先返回姓名，缺失时回退到用户名
func (u *User) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}
