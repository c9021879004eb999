package ports

import "context"

// UnitOfWork manages transaction boundaries.
// One UnitOfWork call is one database transaction.
//
// Pattern: Unit of Work
//
// Example:
//
//	err := uow.Execute(ctx, func(txCtx context.Context) error {
//	    if err := addressRepo.DeleteByPersonID(txCtx, personID); err != nil {
//	        return err // automatic rollback
//	    }
//	    return personRepo.Delete(txCtx, personID)
//	})
//	// fn returns nil: COMMIT; fn returns error: ROLLBACK
//
// The context passed to fn carries the transaction. Every repository call
// inside fn must use that context.
type UnitOfWork interface {
	// Execute runs fn inside a transaction.
	Execute(ctx context.Context, fn func(context.Context) error) error

	// ExecuteWithResult is Execute with a return value.
	// Useful when the transaction produces an entity the caller needs.
	ExecuteWithResult(ctx context.Context, fn func(context.Context) (interface{}, error)) (interface{}, error)
}
