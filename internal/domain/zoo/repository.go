package zoo

import "context"

// Repository persiste Records. List devuelve en orden de admisión.
// GetByID y Delete devuelven ErrNotFound si el id no existe.
type Repository interface {
	Create(ctx context.Context, r Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id string) error
}
