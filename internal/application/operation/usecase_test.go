package operation

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/logger"
)

// --- fakes en memoria ---

type fakeOperationRepo struct {
	ops        map[string]*entity.Operation
	createErrs []error
}

func newFakeOperationRepo() *fakeOperationRepo {
	return &fakeOperationRepo{ops: map[string]*entity.Operation{}}
}

func (r *fakeOperationRepo) Create(_ context.Context, op *entity.Operation) error {
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range r.ops {
		if existing.Number == op.Number {
			return domain.ErrDuplicate
		}
	}
	cp := *op
	r.ops[op.ID] = &cp
	return nil
}

func (r *fakeOperationRepo) GetByID(_ context.Context, id string) (*entity.Operation, error) {
	op, ok := r.ops[id]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}

func (r *fakeOperationRepo) Update(_ context.Context, op *entity.Operation) error {
	cp := *op
	r.ops[op.ID] = &cp
	return nil
}

func (r *fakeOperationRepo) Touch(_ context.Context, id string, at time.Time) error {
	if op, ok := r.ops[id]; ok {
		op.UpdatedAt = at
	}
	return nil
}

func (r *fakeOperationRepo) ListByUser(_ context.Context, userID string, _, _ int) ([]*entity.Operation, error) {
	var out []*entity.Operation
	for _, op := range r.ops {
		if op.UserID == userID {
			cp := *op
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOperationRepo) ListUpdatedSince(_ context.Context, userID string, since time.Time) ([]*entity.Operation, error) {
	var out []*entity.Operation
	for _, op := range r.ops {
		if op.UserID == userID && op.UpdatedAt.After(since) {
			cp := *op
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOperationRepo) Delete(_ context.Context, id string) error {
	delete(r.ops, id)
	return nil
}

type fakeMoneyRepo struct {
	movements map[string]*entity.MoneyMovement
}

func newFakeMoneyRepo() *fakeMoneyRepo {
	return &fakeMoneyRepo{movements: map[string]*entity.MoneyMovement{}}
}

func (r *fakeMoneyRepo) Create(_ context.Context, m *entity.MoneyMovement) error {
	cp := *m
	r.movements[m.ID] = &cp
	return nil
}

func (r *fakeMoneyRepo) GetByID(_ context.Context, id string) (*entity.MoneyMovement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMoneyRepo) ListByOperation(_ context.Context, operationID string) ([]*entity.MoneyMovement, error) {
	var out []*entity.MoneyMovement
	for _, m := range r.movements {
		if m.OperationID == operationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMoneyRepo) DeleteByOperation(_ context.Context, operationID string) error {
	for id, m := range r.movements {
		if m.OperationID == operationID {
			delete(r.movements, id)
		}
	}
	return nil
}

type fakeProductMovementRepo struct {
	movements map[string]*entity.ProductMovement
}

func newFakeProductMovementRepo() *fakeProductMovementRepo {
	return &fakeProductMovementRepo{movements: map[string]*entity.ProductMovement{}}
}

func (r *fakeProductMovementRepo) Create(_ context.Context, m *entity.ProductMovement) error {
	cp := *m
	r.movements[m.ID] = &cp
	return nil
}

func (r *fakeProductMovementRepo) GetByID(_ context.Context, id string) (*entity.ProductMovement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeProductMovementRepo) ListByOperation(_ context.Context, operationID string) ([]*entity.ProductMovement, error) {
	var out []*entity.ProductMovement
	for _, m := range r.movements {
		if m.OperationID == operationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductMovementRepo) DeleteByOperation(_ context.Context, operationID string) error {
	for id, m := range r.movements {
		if m.OperationID == operationID {
			delete(r.movements, id)
		}
	}
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*entity.Provider
}

func (r *fakeProviderRepo) Create(_ context.Context, p *entity.Provider) error {
	r.providers[p.ID] = p
	return nil
}
func (r *fakeProviderRepo) GetByID(_ context.Context, id string) (*entity.Provider, error) {
	return r.providers[id], nil
}
func (r *fakeProviderRepo) Update(_ context.Context, p *entity.Provider) error { return nil }
func (r *fakeProviderRepo) ListByUser(_ context.Context, _ string, _, _ int) ([]*entity.Provider, error) {
	return nil, nil
}
func (r *fakeProviderRepo) ListUpdatedSince(_ context.Context, _ string, _ time.Time) ([]*entity.Provider, error) {
	return nil, nil
}
func (r *fakeProviderRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (r *fakeProductRepo) ListByUser(_ context.Context, _ string) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }

// fakeTxRunner ejecuta el callback directo sobre los mismos fakes.
type fakeTxRunner struct {
	ops     repository.OperationRepository
	money   repository.MoneyMovementRepository
	product repository.ProductMovementRepository
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.OperationRepository,
	repository.MoneyMovementRepository,
	repository.ProductMovementRepository,
) error) error {
	return fn(t.ops, t.money, t.product)
}

type fakeNotifier struct {
	closedNumbers []string
}

func (n *fakeNotifier) SendWelcome(_, _ string) {}
func (n *fakeNotifier) SendOperationClosed(_, number string) {
	n.closedNumbers = append(n.closedNumbers, number)
}

type fakeStatementGenerator struct{}

func (g *fakeStatementGenerator) GenerateStatement(_ context.Context, _ StatementData) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

// --- armado ---

type fixture struct {
	uc       *UseCase
	ops      *fakeOperationRepo
	money    *fakeMoneyRepo
	product  *fakeProductMovementRepo
	notifier *fakeNotifier
	userID   string
	provID   string
	prodID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ops := newFakeOperationRepo()
	money := newFakeMoneyRepo()
	product := newFakeProductMovementRepo()

	userID := uuid.NewString()
	provID := uuid.NewString()
	prodID := uuid.NewString()

	providers := &fakeProviderRepo{providers: map[string]*entity.Provider{
		provID: {ID: provID, UserID: userID, Name: "Don Pedro"},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		prodID: {ID: prodID, UserID: userID, Name: "Café pergamino", Unit: "kg"},
	}}
	users := &fakeUserRepo{users: map[string]*entity.User{
		userID: {ID: userID, Email: "ana@example.com", Name: "Ana"},
	}}
	notifier := &fakeNotifier{}
	tx := &fakeTxRunner{ops: ops, money: money, product: product}
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	uc := NewUseCase(ops, money, product, providers, products, users, tx, &fakeStatementGenerator{}, notifier, log)
	return &fixture{uc: uc, ops: ops, money: money, product: product, notifier: notifier, userID: userID, provID: provID, prodID: prodID}
}

func (f *fixture) createOperation(t *testing.T) *dto.OperationResponse {
	t.Helper()
	resp, err := f.uc.Create(context.Background(), f.userID, "", dto.CreateOperationRequest{
		ProviderID:     f.provID,
		ProductID:      f.prodID,
		PricePerUnit:   decimal.NewFromInt(10),
		AgreedQuantity: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	return resp
}

// --- tests ---

func TestCreateOperation(t *testing.T) {
	f := newFixture(t)
	resp := f.createOperation(t)

	assert.Equal(t, entity.OperationStatusOpen, resp.Status)
	assert.True(t, strings.HasPrefix(resp.Number, "OP-"), "número legible: %s", resp.Number)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateOperationReintentaNumeroDuplicado(t *testing.T) {
	f := newFixture(t)
	// El contrato admite el sentinela envuelto, no solo el valor pelado.
	f.ops.createErrs = []error{fmt.Errorf("insertar operación: %w", domain.ErrDuplicate)}

	resp := f.createOperation(t)
	assert.NotEmpty(t, resp.Number)
	assert.Len(t, f.ops.ops, 1)
}

func TestCreateOperationProviderAjenoEsNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), uuid.NewString(), "", dto.CreateOperationRequest{
		ProviderID:   f.provID,
		ProductID:    f.prodID,
		PricePerUnit: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddMoneyMovement(t *testing.T) {
	f := newFixture(t)
	op := f.createOperation(t)
	before := f.ops.ops[op.ID].UpdatedAt

	time.Sleep(time.Millisecond)
	mv, err := f.uc.AddMoneyMovement(context.Background(), f.userID, "", op.ID, dto.CreateMoneyMovementRequest{
		Amount: decimal.NewFromInt(350),
		Type:   entity.MoneyTypeAdvance,
		Method: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, op.ID, mv.OperationID)

	// Registrar el movimiento toca UpdatedAt de la operación.
	assert.True(t, f.ops.ops[op.ID].UpdatedAt.After(before))
}

func TestAddMoneyMovementValidaTipoYMonto(t *testing.T) {
	f := newFixture(t)
	op := f.createOperation(t)

	_, err := f.uc.AddMoneyMovement(context.Background(), f.userID, "", op.ID, dto.CreateMoneyMovementRequest{
		Amount: decimal.Zero,
		Type:   entity.MoneyTypeAdvance,
		Method: entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.AddMoneyMovement(context.Background(), f.userID, "", op.ID, dto.CreateMoneyMovementRequest{
		Amount: decimal.NewFromInt(100),
		Type:   "REGALO",
		Method: entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddProductMovementDerivaNetoDeBrutoYTara(t *testing.T) {
	f := newFixture(t)
	op := f.createOperation(t)

	gross := decimal.NewFromInt(52)
	tare := decimal.NewFromInt(2)
	mv, err := f.uc.AddProductMovement(context.Background(), f.userID, "", op.ID, dto.CreateProductMovementRequest{
		GrossWeight: &gross,
		Tare:        &tare,
		Type:        entity.ProductTypeDelivery,
	})
	require.NoError(t, err)
	assert.True(t, mv.NetWeight.Equal(decimal.NewFromInt(50)))
}

func TestAddProductMovementNetoNoPositivoFalla(t *testing.T) {
	f := newFixture(t)
	op := f.createOperation(t)

	gross := decimal.NewFromInt(2)
	tare := decimal.NewFromInt(5)
	_, err := f.uc.AddProductMovement(context.Background(), f.userID, "", op.ID, dto.CreateProductMovementRequest{
		GrossWeight: &gross,
		Tare:        &tare,
		Type:        entity.ProductTypeDelivery,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCloseEsIrreversible(t *testing.T) {
	f := newFixture(t)
	op := f.createOperation(t)

	closed, err := f.uc.Close(context.Background(), f.userID, "", op.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OperationStatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)
	assert.Equal(t, []string{op.Number}, f.notifier.closedNumbers)

	// Cerrar dos veces falla; no hay reapertura.
	_, err = f.uc.Close(context.Background(), f.userID, "", op.ID)
	assert.ErrorIs(t, err, domain.ErrOperationClosed)
}

func TestOperacionCerradaRechazaMovimientosYEdiciones(t *testing.T) {
	f := newFixture(t)
	op := f.createOperation(t)
	_, err := f.uc.Close(context.Background(), f.userID, "", op.ID)
	require.NoError(t, err)

	_, err = f.uc.AddMoneyMovement(context.Background(), f.userID, "", op.ID, dto.CreateMoneyMovementRequest{
		Amount: decimal.NewFromInt(100),
		Type:   entity.MoneyTypePayment,
		Method: entity.PaymentMethodTransfer,
	})
	assert.ErrorIs(t, err, domain.ErrOperationClosed)

	desc := "tarde"
	_, err = f.uc.Update(context.Background(), f.userID, "", op.ID, dto.UpdateOperationRequest{Description: &desc})
	assert.ErrorIs(t, err, domain.ErrOperationClosed)
}

func TestGetDetailIncluyeBalance(t *testing.T) {
	f := newFixture(t)
	op := f.createOperation(t)

	_, err := f.uc.AddMoneyMovement(context.Background(), f.userID, "", op.ID, dto.CreateMoneyMovementRequest{
		Amount: decimal.NewFromInt(350),
		Type:   entity.MoneyTypeAdvance,
		Method: entity.PaymentMethodCash,
	})
	require.NoError(t, err)

	detail, err := f.uc.GetDetail(context.Background(), f.userID, "", op.ID)
	require.NoError(t, err)
	assert.Len(t, detail.MoneyMovements, 1)
	assert.True(t, detail.Balance.TotalAdvances.Equal(decimal.NewFromInt(350)))
	assert.True(t, detail.Balance.MoneyBalance.Equal(decimal.NewFromInt(650)))
}

func TestGetDetailDeOtroUsuarioEsNotFound(t *testing.T) {
	f := newFixture(t)
	op := f.createOperation(t)

	_, err := f.uc.GetDetail(context.Background(), uuid.NewString(), "", op.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetDetailMiembroDeOrganizacionVe(t *testing.T) {
	f := newFixture(t)
	orgID := uuid.NewString()
	now := time.Now().UTC()
	op := &entity.Operation{
		ID:             uuid.NewString(),
		Number:         "OP-20260830-abc123",
		Status:         entity.OperationStatusOpen,
		UserID:         f.userID,
		OrganizationID: orgID,
		ProviderID:     f.provID,
		ProductID:      f.prodID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, f.ops.Create(context.Background(), op))

	// Otro usuario de la misma organización puede verla.
	detail, err := f.uc.GetDetail(context.Background(), uuid.NewString(), orgID, op.ID)
	require.NoError(t, err)
	assert.Equal(t, op.ID, detail.Operation.ID)
}

func TestDeleteBorraEnCascada(t *testing.T) {
	f := newFixture(t)
	op := f.createOperation(t)
	_, err := f.uc.AddMoneyMovement(context.Background(), f.userID, "", op.ID, dto.CreateMoneyMovementRequest{
		Amount: decimal.NewFromInt(100),
		Type:   entity.MoneyTypePayment,
		Method: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	gross := decimal.NewFromInt(30)
	tare := decimal.NewFromInt(1)
	_, err = f.uc.AddProductMovement(context.Background(), f.userID, "", op.ID, dto.CreateProductMovementRequest{
		GrossWeight: &gross,
		Tare:        &tare,
		Type:        entity.ProductTypeDelivery,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), f.userID, "", op.ID))
	assert.Empty(t, f.ops.ops)
	assert.Empty(t, f.money.movements)
	assert.Empty(t, f.product.movements)
}

func TestStatementGeneraPDF(t *testing.T) {
	f := newFixture(t)
	op := f.createOperation(t)

	pdf, err := f.uc.Statement(context.Background(), f.userID, "", op.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}
