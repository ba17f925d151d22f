package operation

import (
	"context"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/balance"
)

// Statement genera el estado de cuenta en PDF de una operación.
func (uc *UseCase) Statement(ctx context.Context, userID, orgID, id string) ([]byte, error) {
	op, err := uc.operations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil || !canAccess(userID, orgID, op) {
		return nil, domain.ErrNotFound
	}
	money, err := uc.money.ListByOperation(ctx, id)
	if err != nil {
		return nil, err
	}
	product, err := uc.product.ListByOperation(ctx, id)
	if err != nil {
		return nil, err
	}

	providerName := ""
	if p, err := uc.providers.GetByID(ctx, op.ProviderID); err == nil && p != nil {
		providerName = p.Name
	}
	productName := ""
	if p, err := uc.products.GetByID(ctx, op.ProductID); err == nil && p != nil {
		productName = p.Name
	}

	return uc.statements.GenerateStatement(ctx, StatementData{
		Operation:        op,
		ProviderName:     providerName,
		ProductName:      productName,
		MoneyMovements:   money,
		ProductMovements: product,
		Balance:          balance.Compute(op, money, product),
	})
}
