package model

import "time"

type User struct {
	UserID           string    `bson:"user_id" json:"user_id"`
	Username         string    `bson:"username" json:"username" validate:"required,min=4,max=20"`
	Email            string    `bson:"email" json:"email" validate:"required,email"`
	Password         string    `bson:"password" json:"-" validate:"required,password"` // argon2id encoded
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	LastActiveAt     time.Time `bson:"last_active_at" json:"last_active_at"`
	TwoFactorEnabled bool      `bson:"two_factor_enabled" json:"two_factor_enabled"`
	TwoFactorSecret  string    `bson:"two_factor_secret,omitempty" json:"-"`
	RecoveryCodes    []string  `bson:"recovery_codes,omitempty" json:"-"` // hashed
}
