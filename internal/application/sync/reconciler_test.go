package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/logger"
)

// --- fakes en memoria ---

type memOperations struct {
	items map[string]*entity.Operation
	fail  error
}

func (r *memOperations) Create(_ context.Context, op *entity.Operation) error {
	if r.fail != nil {
		return r.fail
	}
	cp := *op
	r.items[op.ID] = &cp
	return nil
}
func (r *memOperations) GetByID(_ context.Context, id string) (*entity.Operation, error) {
	op, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}
func (r *memOperations) Update(_ context.Context, op *entity.Operation) error {
	cp := *op
	r.items[op.ID] = &cp
	return nil
}
func (r *memOperations) Touch(_ context.Context, id string, at time.Time) error {
	if op, ok := r.items[id]; ok {
		op.UpdatedAt = at
	}
	return nil
}
func (r *memOperations) ListByUser(_ context.Context, userID string, _, _ int) ([]*entity.Operation, error) {
	var out []*entity.Operation
	for _, op := range r.items {
		if op.UserID == userID {
			cp := *op
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memOperations) ListUpdatedSince(_ context.Context, userID string, since time.Time) ([]*entity.Operation, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	var out []*entity.Operation
	for _, op := range r.items {
		if op.UserID == userID && op.UpdatedAt.After(since) {
			cp := *op
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memOperations) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memMoney struct{ items map[string]*entity.MoneyMovement }

func (r *memMoney) Create(_ context.Context, m *entity.MoneyMovement) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}
func (r *memMoney) GetByID(_ context.Context, id string) (*entity.MoneyMovement, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}
func (r *memMoney) ListByOperation(_ context.Context, operationID string) ([]*entity.MoneyMovement, error) {
	var out []*entity.MoneyMovement
	for _, m := range r.items {
		if m.OperationID == operationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memMoney) DeleteByOperation(_ context.Context, _ string) error { return nil }

type memProductMovements struct{ items map[string]*entity.ProductMovement }

func (r *memProductMovements) Create(_ context.Context, m *entity.ProductMovement) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}
func (r *memProductMovements) GetByID(_ context.Context, id string) (*entity.ProductMovement, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}
func (r *memProductMovements) ListByOperation(_ context.Context, operationID string) ([]*entity.ProductMovement, error) {
	var out []*entity.ProductMovement
	for _, m := range r.items {
		if m.OperationID == operationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memProductMovements) DeleteByOperation(_ context.Context, _ string) error { return nil }

type memProviders struct{ items map[string]*entity.Provider }

func (r *memProviders) Create(_ context.Context, p *entity.Provider) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}
func (r *memProviders) GetByID(_ context.Context, id string) (*entity.Provider, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memProviders) Update(_ context.Context, p *entity.Provider) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}
func (r *memProviders) ListByUser(_ context.Context, _ string, _, _ int) ([]*entity.Provider, error) {
	return nil, nil
}
func (r *memProviders) ListUpdatedSince(_ context.Context, userID string, since time.Time) ([]*entity.Provider, error) {
	var out []*entity.Provider
	for _, p := range r.items {
		if p.UserID == userID && p.UpdatedAt.After(since) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memProviders) Delete(_ context.Context, _ string) error { return nil }

type memClients struct{ items map[string]*entity.Client }

func (r *memClients) Create(_ context.Context, c *entity.Client) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}
func (r *memClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *memClients) Update(_ context.Context, c *entity.Client) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}
func (r *memClients) ListByUser(_ context.Context, _ string, _, _ int) ([]*entity.Client, error) {
	return nil, nil
}
func (r *memClients) ListUpdatedSince(_ context.Context, userID string, since time.Time) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.items {
		if c.UserID == userID && c.UpdatedAt.After(since) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memClients) Delete(_ context.Context, _ string) error { return nil }

type memProducts struct{ items map[string]*entity.Product }

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}
func (r *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memProducts) Update(_ context.Context, _ *entity.Product) error { return nil }
func (r *memProducts) ListByUser(_ context.Context, userID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memProducts) Delete(_ context.Context, _ string) error { return nil }

type memExpenses struct{ items map[string]*entity.Expense }

func (r *memExpenses) Create(_ context.Context, e *entity.Expense) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}
func (r *memExpenses) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}
func (r *memExpenses) Update(_ context.Context, e *entity.Expense) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}
func (r *memExpenses) ListByUser(_ context.Context, _ string, _, _ int) ([]*entity.Expense, error) {
	return nil, nil
}
func (r *memExpenses) ListUpdatedSince(_ context.Context, userID string, since time.Time) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.items {
		if e.UserID == userID && e.UpdatedAt.After(since) {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memExpenses) Delete(_ context.Context, _ string) error { return nil }

type memIncomes struct{ items map[string]*entity.Income }

func (r *memIncomes) Create(_ context.Context, i *entity.Income) error {
	cp := *i
	r.items[i.ID] = &cp
	return nil
}
func (r *memIncomes) GetByID(_ context.Context, id string) (*entity.Income, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}
func (r *memIncomes) Update(_ context.Context, i *entity.Income) error {
	cp := *i
	r.items[i.ID] = &cp
	return nil
}
func (r *memIncomes) ListByUser(_ context.Context, _ string, _, _ int) ([]*entity.Income, error) {
	return nil, nil
}
func (r *memIncomes) ListUpdatedSince(_ context.Context, userID string, since time.Time) ([]*entity.Income, error) {
	var out []*entity.Income
	for _, i := range r.items {
		if i.UserID == userID && i.UpdatedAt.After(since) {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memIncomes) Delete(_ context.Context, _ string) error { return nil }

type memSyncLogs struct{ rows []*entity.SyncLog }

func (r *memSyncLogs) Create(_ context.Context, l *entity.SyncLog) error {
	cp := *l
	r.rows = append(r.rows, &cp)
	return nil
}
func (r *memSyncLogs) ListByUser(_ context.Context, userID string, limit int) ([]*entity.SyncLog, error) {
	var out []*entity.SyncLog
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if r.rows[i].UserID == userID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}
func (r *memSyncLogs) LastSuccess(_ context.Context, userID string) (*entity.SyncLog, error) {
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].UserID == userID && r.rows[i].Status == entity.SyncStatusSuccess {
			return r.rows[i], nil
		}
	}
	return nil, nil
}

// --- armado ---

type syncFixture struct {
	uc         *UseCase
	operations *memOperations
	money      *memMoney
	product    *memProductMovements
	providers  *memProviders
	clients    *memClients
	products   *memProducts
	expenses   *memExpenses
	incomes    *memIncomes
	logs       *memSyncLogs
	userID     string
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	f := &syncFixture{
		operations: &memOperations{items: map[string]*entity.Operation{}},
		money:      &memMoney{items: map[string]*entity.MoneyMovement{}},
		product:    &memProductMovements{items: map[string]*entity.ProductMovement{}},
		providers:  &memProviders{items: map[string]*entity.Provider{}},
		clients:    &memClients{items: map[string]*entity.Client{}},
		products:   &memProducts{items: map[string]*entity.Product{}},
		expenses:   &memExpenses{items: map[string]*entity.Expense{}},
		incomes:    &memIncomes{items: map[string]*entity.Income{}},
		logs:       &memSyncLogs{},
		userID:     uuid.NewString(),
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	f.uc = NewUseCase(f.operations, f.money, f.product, f.providers, f.clients, f.products, f.expenses, f.incomes, f.logs, log)
	return f
}

func syncOp(updatedAt time.Time) dto.SyncOperation {
	created := updatedAt.Add(-time.Hour)
	return dto.SyncOperation{
		ID:             uuid.NewString(),
		Number:         "OP-20260815-a1b2c3",
		Status:         entity.OperationStatusOpen,
		PricePerUnit:   decimal.NewFromInt(10),
		AgreedQuantity: decimal.NewFromInt(100),
		ProviderID:     uuid.NewString(),
		ProductID:      uuid.NewString(),
		CreatedAt:      created,
		UpdatedAt:      updatedAt,
	}
}

// --- tests de push ---

func TestPushCreaAdoptandoIDDelCliente(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now().UTC()
	op := syncOp(now)

	resp, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{
		Operations: []dto.SyncOperation{op},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Operations.Created)
	assert.Empty(t, resp.Operations.Errors)

	stored := f.operations.items[op.ID]
	require.NotNil(t, stored, "el UUID del cliente se adopta tal cual")
	assert.Equal(t, f.userID, stored.UserID)
	assert.Equal(t, op.Number, stored.Number)
}

func TestPushEsIdempotente(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now().UTC()
	req := dto.SyncPushRequest{Operations: []dto.SyncOperation{syncOp(now)}}

	first, err := f.uc.Push(context.Background(), f.userID, "", req)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Operations.Created)

	// Reintentar el mismo lote no crea ni actualiza nada.
	second, err := f.uc.Push(context.Background(), f.userID, "", req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Operations.Created)
	assert.Equal(t, 0, second.Operations.Updated)
	assert.Empty(t, second.Operations.Errors)
	assert.Len(t, f.operations.items, 1)
}

func TestPushLastWriteWins(t *testing.T) {
	f := newSyncFixture(t)
	base := time.Now().UTC()
	op := syncOp(base)

	_, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{Operations: []dto.SyncOperation{op}})
	require.NoError(t, err)

	// Más nuevo: sobreescribe el registro completo.
	newer := op
	newer.Description = "renegociado"
	newer.UpdatedAt = base.Add(time.Minute)
	resp, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{Operations: []dto.SyncOperation{newer}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Operations.Updated)
	assert.Equal(t, "renegociado", f.operations.items[op.ID].Description)

	// Más viejo: no-op silencioso, sin error.
	older := op
	older.Description = "versión vieja"
	older.UpdatedAt = base.Add(-time.Minute)
	resp, err = f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{Operations: []dto.SyncOperation{older}})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Operations.Updated)
	assert.Empty(t, resp.Operations.Errors)
	assert.Equal(t, "renegociado", f.operations.items[op.ID].Description)
}

func TestPushNoReabreOperacionCerrada(t *testing.T) {
	f := newSyncFixture(t)
	base := time.Now().UTC()
	closedAt := base
	opID := uuid.NewString()
	f.operations.items[opID] = &entity.Operation{
		ID: opID, Number: "OP-20260815-ffffff", Status: entity.OperationStatusClosed,
		UserID: f.userID, ClosedAt: &closedAt, CreatedAt: base.Add(-time.Hour), UpdatedAt: base,
	}

	rec := syncOp(base.Add(time.Minute))
	rec.ID = opID
	resp, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{Operations: []dto.SyncOperation{rec}})
	require.NoError(t, err)
	require.Len(t, resp.Operations.Errors, 1)
	assert.Equal(t, opID, resp.Operations.Errors[0].ID)
	assert.Equal(t, domain.ErrOperationClosed.Error(), resp.Operations.Errors[0].Message)
	assert.Equal(t, entity.OperationStatusClosed, f.operations.items[opID].Status)
}

func TestPushRegistroInvalidoNoTumbaElLote(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now().UTC()
	good := syncOp(now)
	bad := syncOp(now)
	bad.ID = "no-es-uuid"

	resp, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{
		Operations: []dto.SyncOperation{bad, good},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Operations.Created)
	require.Len(t, resp.Operations.Errors, 1)
	assert.Equal(t, "no-es-uuid", resp.Operations.Errors[0].ID)
	assert.NotNil(t, f.operations.items[good.ID])
}

func TestPushRegistroAjenoEsNotFound(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now().UTC()
	op := syncOp(now)
	f.operations.items[op.ID] = &entity.Operation{
		ID: op.ID, Number: op.Number, Status: entity.OperationStatusOpen,
		UserID: uuid.NewString(), CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Minute),
	}

	resp, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{Operations: []dto.SyncOperation{op}})
	require.NoError(t, err)
	require.Len(t, resp.Operations.Errors, 1)
	assert.Equal(t, domain.ErrNotFound.Error(), resp.Operations.Errors[0].Message)
}

func TestPushMovimientosAnidadosSoloSeCrean(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now().UTC()
	op := syncOp(now)
	mvID := uuid.NewString()
	op.MoneyMovements = []dto.SyncMoneyMovement{{
		ID: mvID, Amount: decimal.NewFromInt(350),
		Type: entity.MoneyTypeAdvance, Method: entity.PaymentMethodCash,
		Date: now, CreatedAt: now, UpdatedAt: now,
	}}

	resp, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{Operations: []dto.SyncOperation{op}})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Operations.Created) // operación + movimiento
	require.NotNil(t, f.money.items[mvID])

	// Reenviar el movimiento con otro monto no lo modifica: es inmutable.
	op.MoneyMovements[0].Amount = decimal.NewFromInt(999)
	op.MoneyMovements[0].UpdatedAt = now.Add(time.Minute)
	_, err = f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{Operations: []dto.SyncOperation{op}})
	require.NoError(t, err)
	assert.True(t, f.money.items[mvID].Amount.Equal(decimal.NewFromInt(350)))
}

func TestPushMovimientoAceptadoConOperacionCerrada(t *testing.T) {
	f := newSyncFixture(t)
	base := time.Now().UTC()
	closedAt := base
	opID := uuid.NewString()
	f.operations.items[opID] = &entity.Operation{
		ID: opID, Number: "OP-20260815-ffffff", Status: entity.OperationStatusClosed,
		UserID: f.userID, ClosedAt: &closedAt, CreatedAt: base.Add(-time.Hour), UpdatedAt: base,
	}

	// El movimiento se registró offline antes del cierre: se acepta.
	rec := syncOp(base.Add(-time.Minute))
	rec.ID = opID
	rec.Status = entity.OperationStatusClosed
	mvID := uuid.NewString()
	rec.ProductMovements = []dto.SyncProductMovement{{
		ID: mvID, NetWeight: decimal.NewFromInt(40),
		Type: entity.ProductTypeDelivery, Date: base, CreatedAt: base, UpdatedAt: base,
	}}
	resp, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{Operations: []dto.SyncOperation{rec}})
	require.NoError(t, err)
	assert.Empty(t, resp.Operations.Errors)
	assert.NotNil(t, f.product.items[mvID])
}

func TestPushEscribeUnaFilaDeAuditoria(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now().UTC()
	_, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{
		Operations: []dto.SyncOperation{syncOp(now)},
		Providers: []dto.SyncContact{{
			ID: uuid.NewString(), Name: "Don Pedro", CreatedAt: now, UpdatedAt: now,
		}},
	})
	require.NoError(t, err)

	require.Len(t, f.logs.rows, 1)
	row := f.logs.rows[0]
	assert.Equal(t, entity.SyncDirectionPush, row.Direction)
	assert.Equal(t, entity.SyncStatusSuccess, row.Status)
	assert.Equal(t, 2, row.RecordsCount)
}

func TestPushConErroresSigueSiendoSuccess(t *testing.T) {
	f := newSyncFixture(t)
	f.operations.fail = errors.New("conexión rechazada")
	now := time.Now().UTC()

	resp, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{
		Operations: []dto.SyncOperation{syncOp(now)},
	})
	require.NoError(t, err)
	require.Len(t, resp.Operations.Errors, 1)

	// El lote se procesó: la fila queda success y el checkpoint avanza,
	// con el conteo de rechazados como constancia.
	require.Len(t, f.logs.rows, 1)
	assert.Equal(t, entity.SyncStatusSuccess, f.logs.rows[0].Status)
	assert.Equal(t, "1 registros con error", f.logs.rows[0].ErrorMessage)
}

// --- tests de pull ---

func TestPullDevuelveSoloLoModificadoDesdeElCheckpoint(t *testing.T) {
	f := newSyncFixture(t)
	checkpoint := time.Now().UTC().Add(-time.Hour)

	oldOp := &entity.Operation{
		ID: uuid.NewString(), Number: "OP-20260101-aaaaaa", Status: entity.OperationStatusOpen,
		UserID: f.userID, CreatedAt: checkpoint.Add(-time.Hour), UpdatedAt: checkpoint.Add(-time.Minute),
	}
	newOp := &entity.Operation{
		ID: uuid.NewString(), Number: "OP-20260830-bbbbbb", Status: entity.OperationStatusOpen,
		UserID: f.userID, CreatedAt: checkpoint, UpdatedAt: checkpoint.Add(time.Minute),
	}
	f.operations.items[oldOp.ID] = oldOp
	f.operations.items[newOp.ID] = newOp

	resp, err := f.uc.Pull(context.Background(), f.userID, checkpoint)
	require.NoError(t, err)
	require.Len(t, resp.Data.Operations, 1)
	assert.Equal(t, newOp.ID, resp.Data.Operations[0].ID)
}

func TestPullCatalogoViajaCompleto(t *testing.T) {
	f := newSyncFixture(t)
	long := time.Now().UTC().Add(-24 * time.Hour)
	f.products.items["p1"] = &entity.Product{ID: "p1", UserID: f.userID, Name: "Café", UpdatedAt: long}

	// Aun con checkpoint reciente, el catálogo llega entero.
	resp, err := f.uc.Pull(context.Background(), f.userID, time.Now().UTC())
	require.NoError(t, err)
	assert.Len(t, resp.Data.Products, 1)
}

func TestPullCapturaElCheckpointAntesDeLeer(t *testing.T) {
	f := newSyncFixture(t)
	before := time.Now().UTC()
	resp, err := f.uc.Pull(context.Background(), f.userID, time.Time{})
	require.NoError(t, err)
	after := time.Now().UTC()

	assert.False(t, resp.SyncTimestamp.Before(before))
	assert.False(t, resp.SyncTimestamp.After(after))
}

func TestPullIncluyeMovimientosAnidados(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now().UTC()
	op := &entity.Operation{
		ID: uuid.NewString(), Number: "OP-20260830-cccccc", Status: entity.OperationStatusOpen,
		UserID: f.userID, CreatedAt: now, UpdatedAt: now,
	}
	f.operations.items[op.ID] = op
	f.money.items["m1"] = &entity.MoneyMovement{
		ID: "m1", OperationID: op.ID, Amount: decimal.NewFromInt(100),
		Type: entity.MoneyTypeAdvance, Method: entity.PaymentMethodCash,
		Date: now, CreatedAt: now, UpdatedAt: now,
	}

	resp, err := f.uc.Pull(context.Background(), f.userID, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, resp.Data.Operations, 1)
	assert.Len(t, resp.Data.Operations[0].MoneyMovements, 1)
}

func TestPullFalloDeLecturaDejaFilaFailed(t *testing.T) {
	f := newSyncFixture(t)
	f.operations.fail = errors.New("timeout")

	_, err := f.uc.Pull(context.Background(), f.userID, time.Time{})
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	require.Len(t, f.logs.rows, 1)
	assert.Equal(t, entity.SyncStatusFailed, f.logs.rows[0].Status)
	assert.Equal(t, entity.SyncDirectionPull, f.logs.rows[0].Direction)
}

// --- tests de status ---

func TestStatusDevuelveUltimoExitoYHistorial(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now().UTC()
	_, err := f.uc.Push(context.Background(), f.userID, "", dto.SyncPushRequest{
		Operations: []dto.SyncOperation{syncOp(now)},
	})
	require.NoError(t, err)
	_, err = f.uc.Pull(context.Background(), f.userID, time.Time{})
	require.NoError(t, err)

	status, err := f.uc.Status(context.Background(), f.userID)
	require.NoError(t, err)
	require.NotNil(t, status.LastSync)
	assert.Len(t, status.History, 2)
}

func TestStatusSinSincronizaciones(t *testing.T) {
	f := newSyncFixture(t)
	status, err := f.uc.Status(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Nil(t, status.LastSync)
	assert.Empty(t, status.History)
}
