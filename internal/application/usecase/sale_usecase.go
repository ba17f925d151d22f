package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
)

// SaleUseCase ventas con abonos parciales. El saldo pendiente se deriva,
// nunca se almacena.
type SaleUseCase struct {
	sales   repository.SaleRepository
	clients repository.ClientRepository
}

func NewSaleUseCase(sales repository.SaleRepository, clients repository.ClientRepository) *SaleUseCase {
	return &SaleUseCase{sales: sales, clients: clients}
}

func (uc *SaleUseCase) Create(ctx context.Context, userID, orgID string, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if !req.Quantity.GreaterThan(decimal.Zero) || !req.UnitPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if c == nil || !canAccess(userID, orgID, c.UserID, c.OrganizationID) {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	s := &entity.Sale{
		ID:             uuid.NewString(),
		UserID:         userID,
		OrganizationID: orgID,
		ClientID:       req.ClientID,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		Total:          req.Quantity.Mul(req.UnitPrice),
		Description:    req.Description,
		Date:           date,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.sales.Create(ctx, s); err != nil {
		return nil, err
	}
	resp := saleToResponse(s, nil)
	return &resp, nil
}

func (uc *SaleUseCase) Get(ctx context.Context, userID, orgID, id string) (*dto.SaleResponse, error) {
	s, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil || !canAccess(userID, orgID, s.UserID, s.OrganizationID) {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.sales.ListPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := saleToResponse(s, payments)
	return &resp, nil
}

// AddPayment registra un abono. Se permite sobrepagar: el saldo negativo
// representa un crédito a favor del cliente.
func (uc *SaleUseCase) AddPayment(ctx context.Context, userID, orgID, saleID string, req dto.CreateSalePaymentRequest) (*dto.SaleResponse, error) {
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(req.Method) {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if s == nil || !canAccess(userID, orgID, s.UserID, s.OrganizationID) {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	p := &entity.SalePayment{
		ID:        uuid.NewString(),
		SaleID:    saleID,
		Amount:    req.Amount,
		Method:    req.Method,
		Date:      date,
		CreatedAt: now,
	}
	if err := uc.sales.CreatePayment(ctx, p); err != nil {
		return nil, err
	}
	payments, err := uc.sales.ListPayments(ctx, saleID)
	if err != nil {
		return nil, err
	}
	resp := saleToResponse(s, payments)
	return &resp, nil
}

func (uc *SaleUseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	items, err := uc.sales.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(items))
	for _, s := range items {
		payments, err := uc.sales.ListPayments(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, saleToResponse(s, payments))
	}
	return &dto.SaleListResponse{Items: out, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func (uc *SaleUseCase) Delete(ctx context.Context, userID, orgID, id string) error {
	s, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil || !canAccess(userID, orgID, s.UserID, s.OrganizationID) {
		return domain.ErrNotFound
	}
	return uc.sales.Delete(ctx, id)
}

func saleToResponse(s *entity.Sale, payments []*entity.SalePayment) dto.SaleResponse {
	paid := decimal.Zero
	outPayments := make([]dto.SalePaymentResponse, 0, len(payments))
	for _, p := range payments {
		paid = paid.Add(p.Amount)
		outPayments = append(outPayments, dto.SalePaymentResponse{
			ID:        p.ID,
			Amount:    p.Amount,
			Method:    p.Method,
			Date:      p.Date,
			CreatedAt: p.CreatedAt,
		})
	}
	return dto.SaleResponse{
		ID:          s.ID,
		ClientID:    s.ClientID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		Total:       s.Total,
		Paid:        paid,
		Outstanding: s.Total.Sub(paid),
		Description: s.Description,
		Date:        s.Date,
		Payments:    outPayments,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
