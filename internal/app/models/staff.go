package models

import "time"

// StaffAccount is a hospital staff login document. Username, email and
// employeeId are backed by unique indexes; the password field only ever
// holds a bcrypt hash.
type StaffAccount struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Username   string    `json:"username" bson:"username"`
	Email      string    `json:"email" bson:"email"`
	Password   string    `json:"-" bson:"password"`
	Role       string    `json:"role" bson:"role"`
	FullName   string    `json:"fullName" bson:"fullName"`
	EmployeeID string    `json:"employeeId,omitempty" bson:"employeeId,omitempty"`
	IsActive   bool      `json:"isActive" bson:"isActive"`
	MFAEnabled bool      `json:"mfaEnabled" bson:"mfaEnabled"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}
