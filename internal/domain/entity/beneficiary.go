package entity

import "time"

// Estados del ciclo de vida de un expediente de beneficiaria.
const (
	BeneficiaryPendingIntake      = "PENDING_INTAKE"      // creado por un rol que califica el caso
	BeneficiaryPendingOrientation = "PENDING_ORIENTATION" // creado en acogida, espera ruteo
	BeneficiaryOriented           = "ORIENTED"            // ruteado a una trabajadora social
	BeneficiaryInFollowup         = "IN_FOLLOWUP"         // asignación directa por dirección
	BeneficiaryInactive           = "INACTIVE"            // terminal (soft delete)
)

// Tipos de beneficiaria (vía de protección).
const (
	BeneficiaryTypeMineure = "MINEURE" // menor protegida
	BeneficiaryTypeFemme   = "FEMME"   // mujer adulta
)

// validBeneficiaryStatus conjunto cerrado de estados.
var validBeneficiaryStatus = map[string]bool{
	BeneficiaryPendingIntake: true, BeneficiaryPendingOrientation: true,
	BeneficiaryOriented: true, BeneficiaryInFollowup: true, BeneficiaryInactive: true,
}

// ValidBeneficiaryStatus informa si el estado pertenece al conjunto cerrado.
func ValidBeneficiaryStatus(s string) bool {
	return validBeneficiaryStatus[s]
}

// ValidBeneficiaryType informa si el tipo pertenece al conjunto cerrado.
func ValidBeneficiaryType(t string) bool {
	return t == BeneficiaryTypeMineure || t == BeneficiaryTypeFemme
}

// Beneficiary es el expediente de caso. OrganizationID es inmutable tras la
// creación; los campos de ruteo (OrientedBy/AssignedTo/...) se sobrescriben
// completos en cada orientación o asignación (last write wins).
type Beneficiary struct {
	ID                string
	OrganizationID    string
	FirstName         string
	LastName          string
	DateOfBirth       time.Time
	Gender            string
	Phone             string
	Address           string
	BeneficiaryType   string // MINEURE o FEMME; se deriva UNA sola vez, en la creación
	Status            string // ver constantes Beneficiary*
	CreatedByID       string
	OrientedByID      *string
	OrientedAt        *time.Time
	OrientationReason string
	AssignedToID      *string
	AssignedAt        *time.Time
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ClassifyBeneficiary deriva la vía de protección a partir de la fecha de
// nacimiento: menor de 18 años al momento de la creación => MINEURE. Es el
// único punto del sistema que hace esta derivación; nunca se re-deriva en
// actualizaciones posteriores.
func ClassifyBeneficiary(dateOfBirth, now time.Time) string {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	if age < 18 {
		return BeneficiaryTypeMineure
	}
	return BeneficiaryTypeFemme
}

// AwaitingRouting informa si el expediente admite orientación/asignación.
func (b *Beneficiary) AwaitingRouting() bool {
	return b.Status == BeneficiaryPendingIntake || b.Status == BeneficiaryPendingOrientation
}
