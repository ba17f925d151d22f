package sync

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
)

// Pull devuelve los cambios del servidor desde since. El checkpoint
// syncTimestamp se captura ANTES de leer: un registro escrito durante
// la lectura puede repetirse en el próximo pull, pero nunca perderse
// (la aplicación de un push es idempotente, repetir es barato).
func (uc *UseCase) Pull(ctx context.Context, userID string, since time.Time) (*dto.SyncPullResponse, error) {
	checkpoint := time.Now().UTC()

	ops, err := uc.operations.ListUpdatedSince(ctx, userID, since)
	if err != nil {
		return nil, uc.pullFailed(ctx, userID, err)
	}
	outOps := make([]dto.SyncOperation, 0, len(ops))
	total := 0
	for _, op := range ops {
		money, err := uc.money.ListByOperation(ctx, op.ID)
		if err != nil {
			return nil, uc.pullFailed(ctx, userID, err)
		}
		product, err := uc.product.ListByOperation(ctx, op.ID)
		if err != nil {
			return nil, uc.pullFailed(ctx, userID, err)
		}
		outOps = append(outOps, operationToSync(op, money, product))
		total += 1 + len(money) + len(product)
	}

	providers, err := uc.providers.ListUpdatedSince(ctx, userID, since)
	if err != nil {
		return nil, uc.pullFailed(ctx, userID, err)
	}
	clients, err := uc.clients.ListUpdatedSince(ctx, userID, since)
	if err != nil {
		return nil, uc.pullFailed(ctx, userID, err)
	}
	expenses, err := uc.expenses.ListUpdatedSince(ctx, userID, since)
	if err != nil {
		return nil, uc.pullFailed(ctx, userID, err)
	}
	incomes, err := uc.incomes.ListUpdatedSince(ctx, userID, since)
	if err != nil {
		return nil, uc.pullFailed(ctx, userID, err)
	}
	// El catálogo viaja completo: es chico, estable, y le ahorra al
	// cliente la lógica de delta para datos de referencia.
	products, err := uc.products.ListByUser(ctx, userID)
	if err != nil {
		return nil, uc.pullFailed(ctx, userID, err)
	}

	resp := &dto.SyncPullResponse{SyncTimestamp: checkpoint}
	resp.Data.Operations = outOps
	resp.Data.Providers = make([]dto.SyncContact, 0, len(providers))
	for _, p := range providers {
		resp.Data.Providers = append(resp.Data.Providers, dto.SyncContact{
			ID: p.ID, Name: p.Name, Phone: p.Phone, Email: p.Email, Address: p.Address,
			CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
		})
	}
	resp.Data.Clients = make([]dto.SyncContact, 0, len(clients))
	for _, c := range clients {
		resp.Data.Clients = append(resp.Data.Clients, dto.SyncContact{
			ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address,
			CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
		})
	}
	resp.Data.Expenses = make([]dto.SyncEntry, 0, len(expenses))
	for _, e := range expenses {
		resp.Data.Expenses = append(resp.Data.Expenses, dto.SyncEntry{
			ID: e.ID, Category: e.Category, Amount: e.Amount, Description: e.Description,
			Date: e.Date, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
		})
	}
	resp.Data.Incomes = make([]dto.SyncEntry, 0, len(incomes))
	for _, in := range incomes {
		resp.Data.Incomes = append(resp.Data.Incomes, dto.SyncEntry{
			ID: in.ID, Category: in.Category, Amount: in.Amount, Description: in.Description,
			Date: in.Date, CreatedAt: in.CreatedAt, UpdatedAt: in.UpdatedAt,
		})
	}
	resp.Data.Products = make([]dto.SyncProduct, 0, len(products))
	for _, p := range products {
		resp.Data.Products = append(resp.Data.Products, dto.SyncProduct{
			ID: p.ID, Name: p.Name, Unit: p.Unit, Description: p.Description,
			CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
		})
	}

	total += len(providers) + len(clients) + len(expenses) + len(incomes) + len(products)
	if err := uc.writeLog(ctx, userID, entity.SyncDirectionPull, total, 0); err != nil {
		return nil, domain.ErrUnavailable
	}
	return resp, nil
}

// pullFailed deja la fila failed en el log y traduce el error de
// almacenamiento para que el cliente reintente más tarde.
func (uc *UseCase) pullFailed(ctx context.Context, userID string, cause error) error {
	l := &entity.SyncLog{
		ID:           uuid.NewString(),
		UserID:       userID,
		Direction:    entity.SyncDirectionPull,
		RecordsCount: 0,
		Status:       entity.SyncStatusFailed,
		ErrorMessage: cause.Error(),
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.syncLogs.Create(ctx, l); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("no se pudo escribir el log de pull fallido")
	}
	uc.log.Error().Err(cause).Str("user_id", userID).Msg("pull fallido")
	return domain.ErrUnavailable
}

func operationToSync(op *entity.Operation, money []*entity.MoneyMovement, product []*entity.ProductMovement) dto.SyncOperation {
	out := dto.SyncOperation{
		ID:             op.ID,
		Number:         op.Number,
		Status:         op.Status,
		Description:    op.Description,
		PricePerUnit:   op.PricePerUnit,
		AgreedQuantity: op.AgreedQuantity,
		TotalAmount:    op.TotalAmount,
		ProviderID:     op.ProviderID,
		ProductID:      op.ProductID,
		ClosedAt:       op.ClosedAt,
		CreatedAt:      op.CreatedAt,
		UpdatedAt:      op.UpdatedAt,
	}
	out.MoneyMovements = make([]dto.SyncMoneyMovement, 0, len(money))
	for _, m := range money {
		out.MoneyMovements = append(out.MoneyMovements, dto.SyncMoneyMovement{
			ID: m.ID, Amount: m.Amount, Type: m.Type, Method: m.Method,
			Description: m.Description, Date: m.Date,
			CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
		})
	}
	out.ProductMovements = make([]dto.SyncProductMovement, 0, len(product))
	for _, m := range product {
		out.ProductMovements = append(out.ProductMovements, dto.SyncProductMovement{
			ID: m.ID, NetWeight: m.NetWeight, GrossWeight: m.GrossWeight, Tare: m.Tare,
			Type: m.Type, Description: m.Description, Date: m.Date,
			CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
		})
	}
	return out
}
