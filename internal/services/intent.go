package services

// Intent is proof that the user confirmed a destructive operation (logout,
// message deletion). Services never prompt; the presentation layer asks the
// question and mints the capability with Confirm. The zero value is
// unconfirmed, so an Intent cannot be forged by accident.
type Intent struct {
	confirmed bool
}

// Confirm mints a confirmed Intent.
func Confirm() Intent { return Intent{confirmed: true} }

// Confirmed reports whether the intent was minted via Confirm.
func (i Intent) Confirmed() bool { return i.confirmed }
