package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/logger"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/validator"
)

// UseCase reconciliación offline-first. El cliente trabaja sin red y
// empuja lotes cuando recupera conexión; el servidor resuelve conflictos
// por registro con last-write-wins sobre UpdatedAt.
type UseCase struct {
	operations repository.OperationRepository
	money      repository.MoneyMovementRepository
	product    repository.ProductMovementRepository
	providers  repository.ProviderRepository
	clients    repository.ClientRepository
	products   repository.ProductRepository
	expenses   repository.ExpenseRepository
	incomes    repository.IncomeRepository
	syncLogs   repository.SyncLogRepository
	log        *logger.Logger
}

func NewUseCase(
	operations repository.OperationRepository,
	money repository.MoneyMovementRepository,
	product repository.ProductMovementRepository,
	providers repository.ProviderRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	expenses repository.ExpenseRepository,
	incomes repository.IncomeRepository,
	syncLogs repository.SyncLogRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		operations: operations,
		money:      money,
		product:    product,
		providers:  providers,
		clients:    clients,
		products:   products,
		expenses:   expenses,
		incomes:    incomes,
		syncLogs:   syncLogs,
		log:        log,
	}
}

func canAccess(userID, orgID, recordUserID, recordOrgID string) bool {
	if recordUserID == userID {
		return true
	}
	return recordOrgID != "" && recordOrgID == orgID
}

// Push aplica un lote de cambios del cliente. Cada registro se procesa
// aislado: un registro inválido se reporta en Errors y el resto del lote
// sigue. El conflicto se resuelve por last-write-wins estricto: solo un
// UpdatedAt más nuevo que el del servidor sobreescribe, y sobreescribe
// el registro completo. Los UUID generados por el cliente se adoptan tal
// cual al crear. Siempre se escribe exactamente una fila de auditoría.
func (uc *UseCase) Push(ctx context.Context, userID, orgID string, req dto.SyncPushRequest) (*dto.SyncPushResponse, error) {
	resp := &dto.SyncPushResponse{SyncedAt: time.Now().UTC()}
	total := 0

	total += uc.pushOperations(ctx, userID, orgID, req.Operations, &resp.Operations)
	total += uc.pushProviders(ctx, userID, orgID, req.Providers, &resp.Providers)
	total += uc.pushClients(ctx, userID, orgID, req.Clients, &resp.Clients)
	total += uc.pushExpenses(ctx, userID, orgID, req.Expenses, &resp.Expenses)
	total += uc.pushIncomes(ctx, userID, orgID, req.Incomes, &resp.Incomes)

	errCount := len(resp.Operations.Errors) + len(resp.Providers.Errors) +
		len(resp.Clients.Errors) + len(resp.Expenses.Errors) + len(resp.Incomes.Errors)

	// Si ni la fila de auditoría se pudo escribir, el almacenamiento
	// está caído: es el único fallo que tumba la llamada completa.
	if err := uc.writeLog(ctx, userID, entity.SyncDirectionPush, total, errCount); err != nil {
		return nil, domain.ErrUnavailable
	}
	return resp, nil
}

func (uc *UseCase) pushOperations(ctx context.Context, userID, orgID string, records []dto.SyncOperation, result *dto.CollectionResult) int {
	processed := 0
	for i := range records {
		rec := &records[i]
		processed++
		if errs := validator.Struct(rec); errs != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: validator.Message(errs)})
			continue
		}
		existing, err := uc.operations.GetByID(ctx, rec.ID)
		if err != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
			continue
		}
		switch {
		case existing == nil:
			op := syncToOperation(rec, userID, orgID)
			if err := uc.operations.Create(ctx, op); err != nil {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
				continue
			}
			result.Created++
		case !canAccess(userID, orgID, existing.UserID, existing.OrganizationID):
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: domain.ErrNotFound.Error()})
			continue
		case rec.UpdatedAt.After(existing.UpdatedAt):
			// CLOSED es terminal también para el cliente offline.
			if existing.Status == entity.OperationStatusClosed && rec.Status == entity.OperationStatusOpen {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: domain.ErrOperationClosed.Error()})
				continue
			}
			op := syncToOperation(rec, existing.UserID, existing.OrganizationID)
			op.CreatedAt = existing.CreatedAt
			if err := uc.operations.Update(ctx, op); err != nil {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
				continue
			}
			result.Updated++
		default:
			// El servidor ya tiene una versión igual o más nueva: no-op.
		}

		// Movimientos anidados: inmutables, solo crear-si-falta. Se
		// aceptan aun con la operación CLOSED, porque se registraron
		// offline cuando todavía estaba abierta.
		processed += uc.pushMoneyMovements(ctx, rec, result)
		processed += uc.pushProductMovements(ctx, rec, result)
	}
	return processed
}

func (uc *UseCase) pushMoneyMovements(ctx context.Context, op *dto.SyncOperation, result *dto.CollectionResult) int {
	processed := 0
	for i := range op.MoneyMovements {
		mv := &op.MoneyMovements[i]
		processed++
		existing, err := uc.money.GetByID(ctx, mv.ID)
		if err != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: mv.ID, Message: err.Error()})
			continue
		}
		if existing != nil {
			continue
		}
		m := &entity.MoneyMovement{
			ID:          mv.ID,
			OperationID: op.ID,
			Amount:      mv.Amount,
			Type:        mv.Type,
			Method:      mv.Method,
			Description: mv.Description,
			Date:        mv.Date,
			CreatedAt:   mv.CreatedAt,
			UpdatedAt:   mv.UpdatedAt,
		}
		if err := uc.money.Create(ctx, m); err != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: mv.ID, Message: err.Error()})
			continue
		}
		result.Created++
	}
	return processed
}

func (uc *UseCase) pushProductMovements(ctx context.Context, op *dto.SyncOperation, result *dto.CollectionResult) int {
	processed := 0
	for i := range op.ProductMovements {
		mv := &op.ProductMovements[i]
		processed++
		existing, err := uc.product.GetByID(ctx, mv.ID)
		if err != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: mv.ID, Message: err.Error()})
			continue
		}
		if existing != nil {
			continue
		}
		m := &entity.ProductMovement{
			ID:          mv.ID,
			OperationID: op.ID,
			NetWeight:   mv.NetWeight,
			GrossWeight: mv.GrossWeight,
			Tare:        mv.Tare,
			Type:        mv.Type,
			Description: mv.Description,
			Date:        mv.Date,
			CreatedAt:   mv.CreatedAt,
			UpdatedAt:   mv.UpdatedAt,
		}
		if err := uc.product.Create(ctx, m); err != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: mv.ID, Message: err.Error()})
			continue
		}
		result.Created++
	}
	return processed
}

func (uc *UseCase) pushProviders(ctx context.Context, userID, orgID string, records []dto.SyncContact, result *dto.CollectionResult) int {
	for i := range records {
		rec := &records[i]
		if errs := validator.Struct(rec); errs != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: validator.Message(errs)})
			continue
		}
		existing, err := uc.providers.GetByID(ctx, rec.ID)
		if err != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
			continue
		}
		switch {
		case existing == nil:
			p := &entity.Provider{
				ID: rec.ID, UserID: userID, OrganizationID: orgID,
				Name: rec.Name, Phone: rec.Phone, Email: rec.Email, Address: rec.Address,
				CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt,
			}
			if err := uc.providers.Create(ctx, p); err != nil {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
				continue
			}
			result.Created++
		case !canAccess(userID, orgID, existing.UserID, existing.OrganizationID):
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: domain.ErrNotFound.Error()})
		case rec.UpdatedAt.After(existing.UpdatedAt):
			existing.Name = rec.Name
			existing.Phone = rec.Phone
			existing.Email = rec.Email
			existing.Address = rec.Address
			existing.UpdatedAt = rec.UpdatedAt
			if err := uc.providers.Update(ctx, existing); err != nil {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
				continue
			}
			result.Updated++
		}
	}
	return len(records)
}

func (uc *UseCase) pushClients(ctx context.Context, userID, orgID string, records []dto.SyncContact, result *dto.CollectionResult) int {
	for i := range records {
		rec := &records[i]
		if errs := validator.Struct(rec); errs != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: validator.Message(errs)})
			continue
		}
		existing, err := uc.clients.GetByID(ctx, rec.ID)
		if err != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
			continue
		}
		switch {
		case existing == nil:
			c := &entity.Client{
				ID: rec.ID, UserID: userID, OrganizationID: orgID,
				Name: rec.Name, Phone: rec.Phone, Email: rec.Email, Address: rec.Address,
				CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt,
			}
			if err := uc.clients.Create(ctx, c); err != nil {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
				continue
			}
			result.Created++
		case !canAccess(userID, orgID, existing.UserID, existing.OrganizationID):
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: domain.ErrNotFound.Error()})
		case rec.UpdatedAt.After(existing.UpdatedAt):
			existing.Name = rec.Name
			existing.Phone = rec.Phone
			existing.Email = rec.Email
			existing.Address = rec.Address
			existing.UpdatedAt = rec.UpdatedAt
			if err := uc.clients.Update(ctx, existing); err != nil {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
				continue
			}
			result.Updated++
		}
	}
	return len(records)
}

func (uc *UseCase) pushExpenses(ctx context.Context, userID, orgID string, records []dto.SyncEntry, result *dto.CollectionResult) int {
	for i := range records {
		rec := &records[i]
		if errs := validator.Struct(rec); errs != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: validator.Message(errs)})
			continue
		}
		existing, err := uc.expenses.GetByID(ctx, rec.ID)
		if err != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
			continue
		}
		switch {
		case existing == nil:
			e := &entity.Expense{
				ID: rec.ID, UserID: userID, OrganizationID: orgID,
				Category: rec.Category, Amount: rec.Amount, Description: rec.Description,
				Date: rec.Date, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt,
			}
			if err := uc.expenses.Create(ctx, e); err != nil {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
				continue
			}
			result.Created++
		case !canAccess(userID, orgID, existing.UserID, existing.OrganizationID):
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: domain.ErrNotFound.Error()})
		case rec.UpdatedAt.After(existing.UpdatedAt):
			existing.Category = rec.Category
			existing.Amount = rec.Amount
			existing.Description = rec.Description
			existing.Date = rec.Date
			existing.UpdatedAt = rec.UpdatedAt
			if err := uc.expenses.Update(ctx, existing); err != nil {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
				continue
			}
			result.Updated++
		}
	}
	return len(records)
}

func (uc *UseCase) pushIncomes(ctx context.Context, userID, orgID string, records []dto.SyncEntry, result *dto.CollectionResult) int {
	for i := range records {
		rec := &records[i]
		if errs := validator.Struct(rec); errs != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: validator.Message(errs)})
			continue
		}
		existing, err := uc.incomes.GetByID(ctx, rec.ID)
		if err != nil {
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
			continue
		}
		switch {
		case existing == nil:
			in := &entity.Income{
				ID: rec.ID, UserID: userID, OrganizationID: orgID,
				Category: rec.Category, Amount: rec.Amount, Description: rec.Description,
				Date: rec.Date, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt,
			}
			if err := uc.incomes.Create(ctx, in); err != nil {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
				continue
			}
			result.Created++
		case !canAccess(userID, orgID, existing.UserID, existing.OrganizationID):
			result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: domain.ErrNotFound.Error()})
		case rec.UpdatedAt.After(existing.UpdatedAt):
			existing.Category = rec.Category
			existing.Amount = rec.Amount
			existing.Description = rec.Description
			existing.Date = rec.Date
			existing.UpdatedAt = rec.UpdatedAt
			if err := uc.incomes.Update(ctx, existing); err != nil {
				result.Errors = append(result.Errors, dto.RecordError{ID: rec.ID, Message: err.Error()})
				continue
			}
			result.Updated++
		}
	}
	return len(records)
}

// writeLog escribe la fila de auditoría. Los errores por registro no
// marcan la fila como failed: el lote se procesó y el checkpoint avanza;
// failed queda reservado para fallos de la llamada completa. El conteo
// de registros rechazados queda en errorMessage.
func (uc *UseCase) writeLog(ctx context.Context, userID, direction string, records, errCount int) error {
	status := entity.SyncStatusSuccess
	msg := ""
	if errCount > 0 {
		msg = fmt.Sprintf("%d registros con error", errCount)
	}
	l := &entity.SyncLog{
		ID:           uuid.NewString(),
		UserID:       userID,
		Direction:    direction,
		RecordsCount: records,
		Status:       status,
		ErrorMessage: msg,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.syncLogs.Create(ctx, l); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Str("direction", direction).Msg("no se pudo escribir el log de sincronización")
		return err
	}
	return nil
}

func syncToOperation(rec *dto.SyncOperation, userID, orgID string) *entity.Operation {
	return &entity.Operation{
		ID:             rec.ID,
		Number:         rec.Number,
		Status:         rec.Status,
		Description:    rec.Description,
		PricePerUnit:   rec.PricePerUnit,
		AgreedQuantity: rec.AgreedQuantity,
		TotalAmount:    rec.TotalAmount,
		UserID:         userID,
		OrganizationID: orgID,
		ProviderID:     rec.ProviderID,
		ProductID:      rec.ProductID,
		ClosedAt:       rec.ClosedAt,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}
