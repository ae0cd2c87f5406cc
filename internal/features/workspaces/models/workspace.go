package workspaces_models

import (
	"time"

	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

type Workspace struct {
	ID          uuid.UUID                             `json:"id"          gorm:"type:uuid;primaryKey"`
	Name        string                                `json:"name"        gorm:"not null"`
	Description string                                `json:"description" gorm:"not null"`
	Visibility  workspaces_enums.WorkspaceVisibility  `json:"visibility"  gorm:"not null;index"`
	OwnerID     uuid.UUID                             `json:"ownerId"     gorm:"type:uuid;not null;index"`

	// Sale state. Price is stored in minor units (paise).
	IsForSale           bool       `json:"isForSale"           gorm:"not null;default:false"`
	SalePriceMinorUnits *int64     `json:"salePriceMinorUnits"`
	SaleCreatorID       *uuid.UUID `json:"saleCreatorId"       gorm:"type:uuid"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

func init() {
	storage.RegisterModels(&Workspace{})
}
