package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so all operations inside Execute share one connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// IdentityRepo returns an AuthIdentityRepository bound to the current transaction.
	IdentityRepo() AuthIdentityRepository

	// SessionRepo returns an AuthSessionRepository bound to the current transaction.
	SessionRepo() AuthSessionRepository

	// RoleRepo returns a UserRoleRepository bound to the current transaction.
	RoleRepo() UserRoleRepository

	// VerificationRepo returns a VerificationTokenRepository bound to the current transaction.
	VerificationRepo() VerificationTokenRepository
}
