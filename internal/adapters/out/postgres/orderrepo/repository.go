package orderrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker records aggregates written within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// NewGormOrderRepository creates the repository. tracker may be nil for read-only use.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	if tracker == nil {
		tracker = noopTracker{}
	}
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the fulfilment columns of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(fulfilmentColumns(aggregate))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves orders in the order of ids, skipping repeated ids. Any unknown id fails
// the whole call with an ObjectNotFoundError listing all of them.
func (r *GormOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	unique := make([]kernel.UUID, 0, len(ids))
	raw := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id.Bytes()]; ok {
			continue
		}
		seen[id.Bytes()] = struct{}{}
		unique = append(unique, id)
		raw = append(raw, id.Bytes())
	}
	if len(unique) == 0 {
		return []*order.Order{}, nil
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Where("id IN ?", raw).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]OrderDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	var missing []string
	orders := make([]*order.Order, 0, len(unique))
	for _, id := range unique {
		dto, ok := byID[id.Bytes()]
		if !ok {
			missing = append(missing, id.String())
			continue
		}
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if len(missing) > 0 {
		return nil, errs.NewObjectNotFoundError("orders", missing)
	}

	return orders, nil
}

// GetAllAwaitingShipment retrieves up to limit packed orders without an assigned carrier,
// oldest first.
func (r *GormOrderRepository) GetAllAwaitingShipment(ctx context.Context, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Where("status = ? AND (assigned_carrier IS NULL OR assigned_carrier = '')", int(order.Packed)).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func orderItemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
