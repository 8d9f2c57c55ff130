package contract

// IUUIDGenerator abstracts ID generation for new records.
type IUUIDGenerator interface {
	NewUUID() string
}
