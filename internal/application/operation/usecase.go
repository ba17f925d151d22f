package operation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/ports"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/balance"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/logger"
)

// UseCase ciclo de vida de operaciones de compra y sus movimientos.
type UseCase struct {
	operations repository.OperationRepository
	money      repository.MoneyMovementRepository
	product    repository.ProductMovementRepository
	providers  repository.ProviderRepository
	products   repository.ProductRepository
	users      repository.UserRepository
	tx         TxRunner
	statements StatementGenerator
	notifier   ports.Notifier
	log        *logger.Logger
}

func NewUseCase(
	operations repository.OperationRepository,
	money repository.MoneyMovementRepository,
	product repository.ProductMovementRepository,
	providers repository.ProviderRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	tx TxRunner,
	statements StatementGenerator,
	notifier ports.Notifier,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		operations: operations,
		money:      money,
		product:    product,
		providers:  providers,
		products:   products,
		users:      users,
		tx:         tx,
		statements: statements,
		notifier:   notifier,
		log:        log,
	}
}

// canAccess: la operación es del usuario o de su organización activa.
func canAccess(userID, orgID string, op *entity.Operation) bool {
	if op.UserID == userID {
		return true
	}
	return op.OrganizationID != "" && op.OrganizationID == orgID
}

// newNumber genera un número legible OP-YYYYMMDD-XXXXXX.
func newNumber(at time.Time) string {
	b := make([]byte, 3)
	rand.Read(b)
	return fmt.Sprintf("OP-%s-%s", at.Format("20060102"), hex.EncodeToString(b))
}

// Create abre una operación nueva en estado OPEN. Si el número aleatorio
// colisiona reintenta con uno fresco.
func (uc *UseCase) Create(ctx context.Context, userID, orgID string, req dto.CreateOperationRequest) (*dto.OperationResponse, error) {
	if req.PricePerUnit.IsNegative() || req.AgreedQuantity.IsNegative() || req.TotalAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if p == nil || (p.UserID != userID && (p.OrganizationID == "" || p.OrganizationID != orgID)) {
		return nil, domain.ErrNotFound
	}
	prod, err := uc.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	op := &entity.Operation{
		ID:             uuid.NewString(),
		Status:         entity.OperationStatusOpen,
		Description:    req.Description,
		PricePerUnit:   req.PricePerUnit,
		AgreedQuantity: req.AgreedQuantity,
		TotalAmount:    req.TotalAmount,
		UserID:         userID,
		OrganizationID: orgID,
		ProviderID:     req.ProviderID,
		ProductID:      req.ProductID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for attempt := 0; attempt < 3; attempt++ {
		op.Number = newNumber(now)
		err = uc.operations.Create(ctx, op)
		if !errors.Is(err, domain.ErrDuplicate) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("operation_id", op.ID).Str("number", op.Number).Msg("operación creada")
	resp := toOperationResponse(op)
	return &resp, nil
}

// GetDetail devuelve la operación, sus movimientos y el balance derivado.
func (uc *UseCase) GetDetail(ctx context.Context, userID, orgID, id string) (*dto.OperationDetailResponse, error) {
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

	detail := &dto.OperationDetailResponse{
		Operation:        toOperationResponse(op),
		MoneyMovements:   make([]dto.MoneyMovementResponse, 0, len(money)),
		ProductMovements: make([]dto.ProductMovementResponse, 0, len(product)),
		Balance:          balance.Compute(op, money, product),
	}
	for _, m := range money {
		detail.MoneyMovements = append(detail.MoneyMovements, toMoneyResponse(m))
	}
	for _, m := range product {
		detail.ProductMovements = append(detail.ProductMovements, toProductMovementResponse(m))
	}
	return detail, nil
}

// Update edita los campos mutables. Solo operaciones OPEN.
func (uc *UseCase) Update(ctx context.Context, userID, orgID, id string, req dto.UpdateOperationRequest) (*dto.OperationResponse, error) {
	op, err := uc.operations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil || !canAccess(userID, orgID, op) {
		return nil, domain.ErrNotFound
	}
	if !op.IsOpen() {
		return nil, domain.ErrOperationClosed
	}
	if req.Description != nil {
		op.Description = *req.Description
	}
	if req.PricePerUnit != nil {
		if req.PricePerUnit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		op.PricePerUnit = *req.PricePerUnit
	}
	if req.AgreedQuantity != nil {
		if req.AgreedQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		op.AgreedQuantity = *req.AgreedQuantity
	}
	if req.TotalAmount != nil {
		if req.TotalAmount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		op.TotalAmount = *req.TotalAmount
	}
	op.UpdatedAt = time.Now().UTC()
	if err := uc.operations.Update(ctx, op); err != nil {
		return nil, err
	}
	resp := toOperationResponse(op)
	return &resp, nil
}

// Close cierra la operación. OPEN→CLOSED es irreversible; cerrar una
// operación ya cerrada falla.
func (uc *UseCase) Close(ctx context.Context, userID, orgID, id string) (*dto.OperationResponse, error) {
	op, err := uc.operations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil || !canAccess(userID, orgID, op) {
		return nil, domain.ErrNotFound
	}
	if !op.IsOpen() {
		return nil, domain.ErrOperationClosed
	}

	now := time.Now().UTC()
	op.Status = entity.OperationStatusClosed
	op.ClosedAt = &now
	op.UpdatedAt = now
	if err := uc.operations.Update(ctx, op); err != nil {
		return nil, err
	}

	uc.log.Info().Str("operation_id", op.ID).Msg("operación cerrada")
	if owner, err := uc.users.GetByID(ctx, op.UserID); err == nil && owner != nil {
		uc.notifier.SendOperationClosed(owner.Email, op.Number)
	}
	resp := toOperationResponse(op)
	return &resp, nil
}

// AddMoneyMovement registra un movimiento de dinero y toca UpdatedAt de
// la operación en la misma transacción.
func (uc *UseCase) AddMoneyMovement(ctx context.Context, userID, orgID, operationID string, req dto.CreateMoneyMovementRequest) (*dto.MoneyMovementResponse, error) {
	op, err := uc.operations.GetByID(ctx, operationID)
	if err != nil {
		return nil, err
	}
	if op == nil || !canAccess(userID, orgID, op) {
		return nil, domain.ErrNotFound
	}
	if !op.IsOpen() {
		return nil, domain.ErrOperationClosed
	}
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMoneyType(req.Type) || !entity.ValidPaymentMethod(req.Method) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	m := &entity.MoneyMovement{
		ID:          uuid.NewString(),
		OperationID: operationID,
		Amount:      req.Amount,
		Type:        req.Type,
		Method:      req.Method,
		Description: req.Description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.Run(ctx, func(opRepo repository.OperationRepository, moneyRepo repository.MoneyMovementRepository, _ repository.ProductMovementRepository) error {
		if err := moneyRepo.Create(ctx, m); err != nil {
			return err
		}
		return opRepo.Touch(ctx, operationID, now)
	})
	if err != nil {
		return nil, err
	}
	resp := toMoneyResponse(m)
	return &resp, nil
}

// AddProductMovement registra una entrega o corrección física. Si llegan
// bruto y tara, el neto se deriva como bruto − tara y debe ser positivo.
func (uc *UseCase) AddProductMovement(ctx context.Context, userID, orgID, operationID string, req dto.CreateProductMovementRequest) (*dto.ProductMovementResponse, error) {
	op, err := uc.operations.GetByID(ctx, operationID)
	if err != nil {
		return nil, err
	}
	if op == nil || !canAccess(userID, orgID, op) {
		return nil, domain.ErrNotFound
	}
	if !op.IsOpen() {
		return nil, domain.ErrOperationClosed
	}
	if !entity.ValidProductType(req.Type) {
		return nil, domain.ErrInvalidInput
	}

	net := req.NetWeight
	if req.GrossWeight != nil && req.Tare != nil {
		net = req.GrossWeight.Sub(*req.Tare)
	}
	if !net.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	m := &entity.ProductMovement{
		ID:          uuid.NewString(),
		OperationID: operationID,
		NetWeight:   net,
		GrossWeight: req.GrossWeight,
		Tare:        req.Tare,
		Type:        req.Type,
		Description: req.Description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.Run(ctx, func(opRepo repository.OperationRepository, _ repository.MoneyMovementRepository, productRepo repository.ProductMovementRepository) error {
		if err := productRepo.Create(ctx, m); err != nil {
			return err
		}
		return opRepo.Touch(ctx, operationID, now)
	})
	if err != nil {
		return nil, err
	}
	resp := toProductMovementResponse(m)
	return &resp, nil
}

// List lista las operaciones visibles del usuario, más recientes primero.
func (uc *UseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.OperationListResponse, error) {
	page.DefaultPage()
	items, err := uc.operations.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OperationResponse, 0, len(items))
	for _, op := range items {
		out = append(out, toOperationResponse(op))
	}
	return &dto.OperationListResponse{Items: out, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Delete borra la operación junto con todos sus movimientos, en una
// sola transacción.
func (uc *UseCase) Delete(ctx context.Context, userID, orgID, id string) error {
	op, err := uc.operations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if op == nil || !canAccess(userID, orgID, op) {
		return domain.ErrNotFound
	}
	err = uc.tx.Run(ctx, func(opRepo repository.OperationRepository, moneyRepo repository.MoneyMovementRepository, productRepo repository.ProductMovementRepository) error {
		if err := moneyRepo.DeleteByOperation(ctx, id); err != nil {
			return err
		}
		if err := productRepo.DeleteByOperation(ctx, id); err != nil {
			return err
		}
		return opRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("operation_id", id).Msg("operación borrada en cascada")
	return nil
}

func toOperationResponse(op *entity.Operation) dto.OperationResponse {
	return dto.OperationResponse{
		ID:             op.ID,
		Number:         op.Number,
		Status:         op.Status,
		Description:    op.Description,
		PricePerUnit:   op.PricePerUnit,
		AgreedQuantity: op.AgreedQuantity,
		TotalAmount:    op.TotalAmount,
		ProviderID:     op.ProviderID,
		ProductID:      op.ProductID,
		OrganizationID: op.OrganizationID,
		ClosedAt:       op.ClosedAt,
		CreatedAt:      op.CreatedAt,
		UpdatedAt:      op.UpdatedAt,
	}
}

func toMoneyResponse(m *entity.MoneyMovement) dto.MoneyMovementResponse {
	return dto.MoneyMovementResponse{
		ID:          m.ID,
		OperationID: m.OperationID,
		Amount:      m.Amount,
		Type:        m.Type,
		Method:      m.Method,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

func toProductMovementResponse(m *entity.ProductMovement) dto.ProductMovementResponse {
	return dto.ProductMovementResponse{
		ID:          m.ID,
		OperationID: m.OperationID,
		NetWeight:   m.NetWeight,
		GrossWeight: m.GrossWeight,
		Tare:        m.Tare,
		Type:        m.Type,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}
