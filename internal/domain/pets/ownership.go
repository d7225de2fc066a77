package pets

import "context"

// OwnerLookup evita importar el paquete owners (owners ya importa pets).
type OwnerLookup interface {
	Exists(ctx context.Context, ownerID int) (bool, error)
}
