package models

import "time"

// Registration defines the account model based on the 'registration' table.
type Registration struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"asha.verma"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Email     string    `json:"email" db:"email" example:"asha@skylink.edu"`
	MobileNo  string    `json:"mobileNo" db:"mobile_no" example:"9876543210"`
	Role      RoleType  `json:"role" db:"role" example:"student"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
