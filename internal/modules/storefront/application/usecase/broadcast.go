package usecase

import (
	"context"

	"kiosqueLive/internal/modules/storefront/application/port"
	"kiosqueLive/internal/modules/storefront/domain"
)

type BroadcastUseCase struct {
	broadcaster port.Broadcaster
}

func NewBroadcastUseCase(b port.Broadcaster) *BroadcastUseCase {
	return &BroadcastUseCase{broadcaster: b}
}

func (uc *BroadcastUseCase) Execute(ctx context.Context, msg *domain.Message) {
	uc.broadcaster.Broadcast(ctx, msg)
}
