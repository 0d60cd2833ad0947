package models

// User is an account that can log in and make bookings. PasswordHash is
// never serialized.
type User struct {
	ID           int64  `json:"user_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}
