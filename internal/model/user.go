package model

import "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/timex"

const TableNameUser = "users"

// User mapped from table <users>
type User struct {
	UID         int64      `gorm:"column:id;primaryKey;autoIncrement" json:"uid" form:"uid"`
	Username    string     `gorm:"column:username;size:50;not null;uniqueIndex" json:"username" form:"username"`
	Password    string     `gorm:"column:password;size:255;not null" json:"password" form:"password"`
	Email       *string    `gorm:"column:email;size:100;uniqueIndex" json:"email" form:"email"`
	Role        string     `gorm:"column:role;size:20;not null;default:USER" json:"role" form:"role"`
	CreatedTime timex.Time `gorm:"column:created_time;autoCreateTime:false" json:"createdTime" form:"createdTime"`
	UpdatedTime timex.Time `gorm:"column:updated_time;autoUpdateTime:false" json:"updatedTime" form:"updatedTime"`
}

func (*User) TableName() string {
	return TableNameUser
}
