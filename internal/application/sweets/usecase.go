package sweets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Dulceria-api/internal/application/dto"
	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/internal/domain/inventory"
	"github.com/jhoicas/Dulceria-api/internal/domain/repository"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/metrics"
)

// ReportGenerator genera el reporte de inventario (implementado en infrastructure/pdf).
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, sweets []*entity.Sweet) ([]byte, error)
}

// SweetUseCase catálogo y stock de dulces.
// Compra y reposición se serializan por ID en el proceso y se escriben con Mutate,
// que es atómico también entre procesos según el backend.
type SweetUseCase struct {
	repo  repository.SweetRepository
	locks *keyedMutex
	log   zerolog.Logger
}

// NewSweetUseCase construye el caso de uso.
func NewSweetUseCase(repo repository.SweetRepository, log zerolog.Logger) *SweetUseCase {
	return &SweetUseCase{repo: repo, locks: newKeyedMutex(), log: log}
}

// GetAll devuelve el catálogo completo.
func (uc *SweetUseCase) GetAll(ctx context.Context) (*dto.SweetListResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toSweetListResponse(list), nil
}

// Search filtra el catálogo por texto (nombre o descripción) y categoría.
func (uc *SweetUseCase) Search(ctx context.Context, q dto.CatalogQuery) (*dto.SweetListResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toSweetListResponse(inventory.Filter(list, q.Search, q.Category)), nil
}

// Categories devuelve las categorías presentes en el catálogo.
func (uc *SweetUseCase) Categories(ctx context.Context) ([]string, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.Categories(list), nil
}

// InventoryReport genera el reporte del catálogo completo.
func (uc *SweetUseCase) InventoryReport(ctx context.Context, gen ReportGenerator) ([]byte, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return gen.GenerateInventoryReport(ctx, list)
}

// GetByID obtiene un dulce; nil, nil si no existe.
func (uc *SweetUseCase) GetByID(ctx context.Context, id string) (*dto.SweetResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	return toSweetResponse(s), nil
}

// Create asigna un ID nuevo y persiste el dulce.
func (uc *SweetUseCase) Create(ctx context.Context, in dto.CreateSweetRequest) (*dto.SweetResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if !inventory.ValidPrice(in.Price) {
		return nil, errInvalidPrice
	}
	sweet := entity.NewSweet(uuid.New().String(), entity.SweetInput{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
		Image:       in.Image,
	})
	if err := uc.repo.Create(ctx, sweet); err != nil {
		return nil, err
	}
	uc.log.Info().Str("sweet_id", sweet.ID).Str("name", sweet.Name).Msg("dulce creado")
	return toSweetResponse(sweet), nil
}

// Update sobrescribe los campos presentes. Editor libre del administrador, pero
// respeta las invariantes: 0 <= quantity <= MaxQuantity, precio válido y name no vacío.
func (uc *SweetUseCase) Update(ctx context.Context, id string, in dto.UpdateSweetRequest) (*dto.SweetResponse, error) {
	patch, err := toSweetPatch(in)
	if err != nil {
		return nil, err
	}
	unlock := uc.locks.Lock(id)
	defer unlock()

	s, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sweet_id", id).Msg("dulce actualizado")
	return toSweetResponse(s), nil
}

// Delete elimina el dulce. Un ID inexistente no es error.
func (uc *SweetUseCase) Delete(ctx context.Context, id string) error {
	unlock := uc.locks.Lock(id)
	defer unlock()
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("sweet_id", id).Msg("dulce eliminado")
	return nil
}

// Purchase descuenta quantity unidades. ErrNotFound si no existe,
// ErrInsufficientStock si se pide más de lo disponible (el stock no cambia).
func (uc *SweetUseCase) Purchase(ctx context.Context, id string, quantity int) (*dto.SweetResponse, error) {
	return uc.moveStock(ctx, "purchase", id, quantity, inventory.Decrement)
}

// Restock suma quantity unidades. ErrNotFound si no existe,
// ErrInvalidInput si el stock resultante pasaría de inventory.MaxQuantity.
func (uc *SweetUseCase) Restock(ctx context.Context, id string, quantity int) (*dto.SweetResponse, error) {
	return uc.moveStock(ctx, "restock", id, quantity, inventory.Increment)
}

func (uc *SweetUseCase) moveStock(
	ctx context.Context,
	op, id string,
	quantity int,
	apply func(available, quantity int) (int, error),
) (out *dto.SweetResponse, err error) {
	start := time.Now()
	defer func() {
		metrics.StockOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		metrics.StockOperationsTotal.WithLabelValues(op, metrics.Result(err)).Inc()
	}()

	if err := dto.Validate(dto.StockRequest{Quantity: quantity}); err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(id)
	defer unlock()

	s, err := uc.repo.Mutate(ctx, id, func(s *entity.Sweet) error {
		next, err := apply(s.Quantity, quantity)
		if err != nil {
			return err
		}
		s.Quantity = next
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("op", op).Str("sweet_id", id).Int("quantity", quantity).Msg("operación de stock rechazada")
		return nil, err
	}

	metrics.UnitsMovedTotal.WithLabelValues(op).Add(float64(quantity))
	uc.log.Info().Str("op", op).Str("sweet_id", id).Int("quantity", quantity).Int("stock", s.Quantity).Msg("stock actualizado")
	return toSweetResponse(s), nil
}

var errInvalidPrice = fmt.Errorf("%w: price debe ser >= 0, con a lo sumo %d decimales",
	domain.ErrInvalidInput, inventory.PriceDecimals)

func toSweetPatch(in dto.UpdateSweetRequest) (entity.SweetPatch, error) {
	if in.Name != nil && *in.Name == "" {
		return entity.SweetPatch{}, domain.ErrInvalidInput
	}
	if in.Price != nil && !inventory.ValidPrice(*in.Price) {
		return entity.SweetPatch{}, errInvalidPrice
	}
	if in.Quantity != nil && !inventory.ValidQuantity(*in.Quantity) {
		return entity.SweetPatch{}, domain.ErrInvalidInput
	}
	return entity.SweetPatch{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
		Image:       in.Image,
	}, nil
}

func toSweetResponse(s *entity.Sweet) *dto.SweetResponse {
	if s == nil {
		return nil
	}
	return &dto.SweetResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		Description: s.Description,
		Image:       s.Image,
		OutOfStock:  s.OutOfStock(),
		LowStock:    s.LowStock(),
	}
}

func toSweetListResponse(list []*entity.Sweet) *dto.SweetListResponse {
	items := make([]dto.SweetResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSweetResponse(s))
	}
	return &dto.SweetListResponse{Items: items, Total: len(items)}
}
