package contract

// IHasher abstracts the one-way password hashing primitive.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}
