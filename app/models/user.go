package models

// User is an account row. Password holds the bcrypt hash.
//
// The hash is serialised on purpose: the login endpoint returns the full row
// and the browser client depends on that shape. See DESIGN.md for the flag
// on this behaviour.
type User struct {
	ID       uint   `gorm:"primaryKey"                       json:"id"`
	Username string `gorm:"uniqueIndex;size:255;not null"    json:"username"`
	Email    string `gorm:"uniqueIndex;size:255;not null"    json:"email"`
	Password string `gorm:"size:255;not null"                json:"password"`
}
