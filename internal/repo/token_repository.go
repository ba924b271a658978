package repo

// TokenRepository stores the device tokens of alert recipients.
type TokenRepository interface {
	Register(token string) error
	Remove(token string) error
	All() ([]string, error)
}
