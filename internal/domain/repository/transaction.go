package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It allows the application layer to define transactional boundaries
// without being coupled to the database technology.
type TransactionManager interface {
	// Execute runs the given function within a single transaction.
	// The function receives a RepositoryFactory that provides repositories
	// bound to the transaction. Any error returned rolls the transaction back.
	Execute(ctx context.Context, fn func(txRepo RepositoryFactory) error) error
}

// RepositoryFactory provides access to repositories that share the same
// transactional context.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewItemRepository returns an ItemRepository bound to the current transaction.
	NewItemRepository() ItemRepository

	// NewAssignmentRepository returns an AssignmentRepository bound to the current transaction.
	NewAssignmentRepository() AssignmentRepository
}
