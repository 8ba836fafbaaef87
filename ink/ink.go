// Package ink holds the regeneration policy for the spendable drawing
// resource. Settlement is a pure function of (balance, lastUpdated, now);
// the store applies it inside the same transaction that reads or mutates
// the account, so no background ticker is needed.
package ink

import "time"

// Policy carries the regeneration constants. All three are configurable;
// the defaults match the production values.
type Policy struct {
	PerHour int
	Cap     int
	Initial int
}

const (
	DefaultPerHour = 100
	DefaultCap     = 5000
	DefaultInitial = 1000
)

func DefaultPolicy() Policy {
	return Policy{PerHour: DefaultPerHour, Cap: DefaultCap, Initial: DefaultInitial}
}

// Settle applies accrued regeneration to a balance. Only whole elapsed
// hours count; the returned timestamp advances to now only when at least
// one whole hour was applied, so partial hours stay accrued against the
// old timestamp instead of being lost on every poll. The result is capped
// at p.Cap but never reduced below the stored balance.
func Settle(balance int, lastUpdated, now time.Time, p Policy) (int, time.Time) {
	hours := int(now.Sub(lastUpdated).Hours())
	if hours <= 0 {
		return balance, lastUpdated
	}

	settled := balance + hours*p.PerHour
	if settled > p.Cap {
		settled = p.Cap
	}
	if settled < balance {
		// Account was over the cap already (e.g. the cap was lowered);
		// settlement never decreases a balance.
		settled = balance
	}
	return settled, now
}

// Spend settles accrued regeneration, then debits amount if the settled
// balance covers it. ok reports whether the debit happened; on false the
// returned balance is the settled balance with nothing removed.
func Spend(balance int, lastUpdated, now time.Time, amount int, p Policy) (remaining int, updated time.Time, ok bool) {
	settled, updated := Settle(balance, lastUpdated, now, p)
	if settled < amount {
		return settled, updated, false
	}
	return settled - amount, updated, true
}
