package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Organization.
const (
	OrgStatusActive    = "active"
	OrgStatusSuspended = "suspended"
)

// Organization representa una asociación/tenant del sistema. Es la frontera de
// aislamiento: toda entidad de dominio lleva una FK a exactamente una
// Organization y esa FK es inmutable después de la creación.
type Organization struct {
	ID               string
	Name             string
	Status           string // active, suspended
	MaxUsers         int
	MaxBeneficiaries int
	MaxStorageGB     decimal.Decimal // cuota de almacenamiento de documentos, fraccionable
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsActive informa si la organización puede operar.
func (o *Organization) IsActive() bool {
	return o != nil && o.Status == OrgStatusActive
}
