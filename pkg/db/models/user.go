package models

import "time"

// User is an operator account. PasswordHash holds an encoded argon2id hash;
// plaintext passwords are never stored.
type User struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string     `gorm:"column:email;size:200;not null;uniqueIndex"`
	Username     string     `gorm:"column:username;size:100;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
