package operation

import (
	"context"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/balance"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Registrar un movimiento (crear + tocar la operación) y el borrado en
// cascada son atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		opRepo repository.OperationRepository,
		moneyRepo repository.MoneyMovementRepository,
		productRepo repository.ProductMovementRepository,
	) error) error
}

// StatementData datos para el estado de cuenta de una operación.
type StatementData struct {
	Operation        *entity.Operation
	ProviderName     string
	ProductName      string
	MoneyMovements   []*entity.MoneyMovement
	ProductMovements []*entity.ProductMovement
	Balance          balance.Balance
}

// StatementGenerator puerto de generación del estado de cuenta (PDF).
type StatementGenerator interface {
	GenerateStatement(ctx context.Context, data StatementData) ([]byte, error)
}
