package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	History() HistoryRepository

	// Close releases the underlying connection pool
	Close() error
}
