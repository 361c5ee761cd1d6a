package entities

// User represents a Discord user with their coin balance.
// One Currency row exists per user; the row is created lazily with a zero
// balance the first time the user is looked up.
type User struct {
	UserID  string
	Balance int64
}

// CanAfford checks if the user has sufficient balance for an amount
func (u *User) CanAfford(amount int64) bool {
	return u.Balance >= amount
}

// CalculateNewBalance calculates what the balance would be after a change
func (u *User) CalculateNewBalance(changeAmount int64) int64 {
	return u.Balance + changeAmount
}
