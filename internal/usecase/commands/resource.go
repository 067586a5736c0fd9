package commands

import (
	"context"
	"log/slog"

	"campusbook/internal/domain/resource"
	"campusbook/internal/infra"
	"campusbook/internal/pkg/errs"
	"campusbook/internal/usecase/queries"
	"campusbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateResourceParams struct {
	Name        string
	Kind        string
	Description string
	Capacity    *int32
	Details     resource.Details
}

type UpdateResourceParams struct {
	Name        *string
	Description *string
	Capacity    *int32
	IsActive    *bool
}

type ResourceCommands interface {
	Create(ctx context.Context, p CreateResourceParams) (*queries.ResourceView, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateResourceParams) (*queries.ResourceView, error)
	// Delete removes the resource and all bookings referencing it in one
	// transaction. This mirrors the system's existing destructive cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}

type resourceCommandsImpl struct {
	uow             shared.UnitOfWork
	resourceQueries queries.ResourceQueries
}

func NewResourceCommands(uow shared.UnitOfWork, resourceQueries queries.ResourceQueries) ResourceCommands {
	return &resourceCommandsImpl{
		uow:             uow,
		resourceQueries: resourceQueries,
	}
}

func (r *resourceCommandsImpl) Create(ctx context.Context, p CreateResourceParams) (*queries.ResourceView, error) {
	kind, err := resource.NewKind(p.Kind)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	capacity := int32(resource.DefaultCapacity)
	if p.Capacity != nil {
		capacity = *p.Capacity
	}

	entity, err := resource.NewResource(p.Name, kind, p.Description, capacity, p.Details)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.Resources().Create(ctx, entity); txErr != nil {
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.resourceQueries.GetResource(ctx, entity.ID())
}

func (r *resourceCommandsImpl) Update(ctx context.Context, id uuid.UUID, p UpdateResourceParams) (*queries.ResourceView, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, txErr := tx.Resources().FindForUpdate(ctx, id)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(txErr, ErrStorageUnavailable)
		}

		if p.Name != nil {
			if txErr := entity.Rename(*p.Name); txErr != nil {
				return errs.Mark(txErr, ErrDomainValidation)
			}
		}
		if p.Description != nil {
			if txErr := entity.Describe(*p.Description); txErr != nil {
				return errs.Mark(txErr, ErrDomainValidation)
			}
		}
		if p.Capacity != nil {
			if txErr := entity.ChangeCapacity(*p.Capacity); txErr != nil {
				return errs.Mark(txErr, ErrDomainValidation)
			}
		}
		if p.IsActive != nil {
			if *p.IsActive {
				entity.Activate()
			} else {
				entity.Deactivate()
			}
		}

		if txErr := tx.Resources().Update(ctx, entity); txErr != nil {
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.resourceQueries.GetResource(ctx, id)
}

func (r *resourceCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := tx.Resources().FindForUpdate(ctx, id); txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(txErr, ErrStorageUnavailable)
		}

		deleted, txErr := tx.Bookings().DeleteByResource(ctx, id)
		if txErr != nil {
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		if deleted > 0 {
			slog.Info("cascading booking delete", "resource_id", id, "bookings_deleted", deleted)
		}

		if txErr := tx.Resources().Delete(ctx, id); txErr != nil {
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		return nil
	})
}
