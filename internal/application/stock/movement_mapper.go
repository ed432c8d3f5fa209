package stock

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func toMovementResponse(m *entity.StockMovement) dto.StockMovementResponse {
	return dto.StockMovementResponse{
		ID:                  m.ID,
		UserID:              m.UserID,
		StockID:             m.StockID,
		FromWaitingRoomID:   m.FromWaitingRoomID,
		ToWaitingRoomID:     m.ToWaitingRoomID,
		FromRackLevelSlotID: m.FromRackLevelSlotID,
		ToRackLevelSlotID:   m.ToRackLevelSlotID,
		ReceptionID:         m.ReceptionID,
		IssueID:             m.IssueID,
		CreatedAt:           m.CreatedAt,
	}
}

func toMovementList(list []*entity.StockMovement, limit, offset int) *dto.StockMovementListResponse {
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.StockMovementListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}
