package access

import "github.com/tu-usuario/care-pro/internal/domain/entity"

// Módulos de permiso (conjunto cerrado; coincide con el CHECK de role_permissions).
const (
	ModuleBeneficiaries = "beneficiaries"
	ModuleDocuments     = "documents"
	ModuleInterventions = "interventions"
	ModuleAccommodation = "accommodation"
	ModuleMeals         = "meals"
	ModuleResources     = "resources"
	ModuleEducation     = "education"
	ModuleActivities    = "activities"
	ModuleTraining      = "training"
	ModuleProjects      = "projects"
	ModuleBudget        = "budget"
	ModuleUsers         = "users"
	ModuleSystem        = "system"
	ModuleNotifications = "notifications"
)

// Acciones de permiso (conjunto cerrado).
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionAssign = "assign"
	ActionOrient = "orient"
)

var validModules = map[string]bool{
	ModuleBeneficiaries: true, ModuleDocuments: true, ModuleInterventions: true,
	ModuleAccommodation: true, ModuleMeals: true, ModuleResources: true,
	ModuleEducation: true, ModuleActivities: true, ModuleTraining: true,
	ModuleProjects: true, ModuleBudget: true, ModuleUsers: true,
	ModuleSystem: true, ModuleNotifications: true,
}

var validActions = map[string]bool{
	ActionCreate: true, ActionRead: true, ActionUpdate: true,
	ActionDelete: true, ActionAssign: true, ActionOrient: true,
}

// ValidModule informa si el módulo pertenece al conjunto cerrado.
func ValidModule(m string) bool { return validModules[m] }

// ValidAction informa si la acción pertenece al conjunto cerrado.
func ValidAction(a string) bool { return validActions[a] }

// Grant es una concesión {módulo, acción} de un rol, opcionalmente restringida
// a los registros creados por el propio usuario.
type Grant struct {
	Module         string
	Action         string
	OwnRecordsOnly bool
}

// Catalog es la tabla canónica rol -> concesiones de los roles integrados.
// Se construye una vez al arrancar el proceso y se inyecta; nunca se muta.
// Es la única fuente de verdad de autorización: cualquier vista derivada para
// la capa de presentación (Snapshot) es solo una pista de UI y la tabla
// canónica se re-evalúa siempre en el punto de efecto.
type Catalog struct {
	version int
	grants  map[string][]Grant
}

// Version identifica la revisión de la tabla estática.
func (c *Catalog) Version() int { return c.version }

func crud(module string) []Grant {
	return []Grant{
		{Module: module, Action: ActionCreate},
		{Module: module, Action: ActionRead},
		{Module: module, Action: ActionUpdate},
		{Module: module, Action: ActionDelete},
	}
}

// NewCatalog construye la tabla estática de los roles integrados.
// EN_ATTENTE aparece explícitamente con lista vacía: un rol sin filas deniega
// todo, nunca permite por vacuidad. ADMIN no necesita filas (super-concesión
// resuelta en el motor).
func NewCatalog() *Catalog {
	g := map[string][]Grant{
		entity.RolePending: {},
		entity.RoleAdmin:   {},

		entity.RoleDirecteur: join(
			crud(ModuleBeneficiaries),
			[]Grant{
				{Module: ModuleBeneficiaries, Action: ActionOrient},
				{Module: ModuleBeneficiaries, Action: ActionAssign},
			},
			crud(ModuleDocuments), crud(ModuleInterventions), crud(ModuleAccommodation),
			crud(ModuleMeals), crud(ModuleResources), crud(ModuleEducation),
			crud(ModuleActivities), crud(ModuleTraining), crud(ModuleProjects),
			crud(ModuleBudget), crud(ModuleUsers),
			[]Grant{{Module: ModuleNotifications, Action: ActionRead}},
		),

		entity.RoleCoordinatrice: join(
			[]Grant{
				{Module: ModuleBeneficiaries, Action: ActionCreate},
				{Module: ModuleBeneficiaries, Action: ActionRead},
				{Module: ModuleBeneficiaries, Action: ActionUpdate},
				{Module: ModuleBeneficiaries, Action: ActionOrient},
				{Module: ModuleBeneficiaries, Action: ActionAssign},
			},
			crud(ModuleDocuments), crud(ModuleInterventions),
			crud(ModuleEducation), crud(ModuleActivities), crud(ModuleTraining),
			[]Grant{
				{Module: ModuleProjects, Action: ActionRead},
				{Module: ModuleUsers, Action: ActionRead},
				{Module: ModuleNotifications, Action: ActionRead},
			},
		),

		entity.RoleAssistante: {
			{Module: ModuleBeneficiaries, Action: ActionCreate},
			{Module: ModuleBeneficiaries, Action: ActionRead},
			{Module: ModuleBeneficiaries, Action: ActionUpdate, OwnRecordsOnly: true},
			{Module: ModuleDocuments, Action: ActionCreate},
			{Module: ModuleDocuments, Action: ActionRead},
			{Module: ModuleInterventions, Action: ActionCreate},
			{Module: ModuleInterventions, Action: ActionRead},
			{Module: ModuleInterventions, Action: ActionUpdate, OwnRecordsOnly: true},
			{Module: ModuleAccommodation, Action: ActionRead},
			{Module: ModuleNotifications, Action: ActionRead},
		},

		entity.RoleReceptionniste: {
			// Acogida: registra llegadas, no califica el caso.
			{Module: ModuleBeneficiaries, Action: ActionCreate},
			{Module: ModuleBeneficiaries, Action: ActionRead},
			{Module: ModuleNotifications, Action: ActionRead},
		},

		entity.RolePsychologue: {
			{Module: ModuleBeneficiaries, Action: ActionRead},
			{Module: ModuleInterventions, Action: ActionCreate},
			{Module: ModuleInterventions, Action: ActionRead},
			{Module: ModuleInterventions, Action: ActionUpdate, OwnRecordsOnly: true},
			{Module: ModuleNotifications, Action: ActionRead},
		},

		entity.RoleEducatrice: join(
			[]Grant{{Module: ModuleBeneficiaries, Action: ActionRead}},
			crud(ModuleEducation), crud(ModuleActivities),
			[]Grant{{Module: ModuleNotifications, Action: ActionRead}},
		),

		entity.RoleAnimatrice: join(
			[]Grant{{Module: ModuleBeneficiaries, Action: ActionRead}},
			crud(ModuleActivities),
			[]Grant{{Module: ModuleNotifications, Action: ActionRead}},
		),

		entity.RoleFormatrice: join(
			crud(ModuleTraining),
			[]Grant{
				{Module: ModuleEducation, Action: ActionRead},
				{Module: ModuleNotifications, Action: ActionRead},
			},
		),

		entity.RoleComptable: join(
			crud(ModuleBudget),
			[]Grant{
				{Module: ModuleProjects, Action: ActionRead},
				{Module: ModuleResources, Action: ActionRead},
				{Module: ModuleNotifications, Action: ActionRead},
			},
		),

		entity.RoleRessources: join(
			crud(ModuleResources), crud(ModuleMeals), crud(ModuleAccommodation),
			[]Grant{{Module: ModuleNotifications, Action: ActionRead}},
		),

		entity.RoleCuisiniere: {
			{Module: ModuleMeals, Action: ActionRead},
			{Module: ModuleMeals, Action: ActionUpdate},
			{Module: ModuleNotifications, Action: ActionRead},
		},

		entity.RoleChauffeur: {
			{Module: ModuleActivities, Action: ActionRead},
			{Module: ModuleNotifications, Action: ActionRead},
		},

		entity.RoleBenevole: {
			{Module: ModuleActivities, Action: ActionRead},
			{Module: ModuleNotifications, Action: ActionRead},
		},
	}
	return &Catalog{version: 1, grants: g}
}

// Grants devuelve las concesiones del rol integrado y si el rol existe en la
// tabla. Un rol desconocido devuelve (nil, false): el motor deniega.
func (c *Catalog) Grants(role string) ([]Grant, bool) {
	g, ok := c.grants[role]
	return g, ok
}

// Snapshot devuelve una copia de la tabla completa para capas de presentación
// (pistas de visibilidad en UI). Nunca debe usarse como puerta final.
func (c *Catalog) Snapshot() map[string][]Grant {
	out := make(map[string][]Grant, len(c.grants))
	for role, grants := range c.grants {
		cp := make([]Grant, len(grants))
		copy(cp, grants)
		out[role] = cp
	}
	return out
}

func join(lists ...[]Grant) []Grant {
	var out []Grant
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
