package access

// Menu is a navigation entry granted to a role.
type Menu struct {
	Name    string
	URL     string
	Icon    string
	Display string
}

// Permission names checked by the handlers.
const (
	PermPaymentsMarkPaid = "payments.mark_paid"
	PermPayoutsMarkPaid  = "payouts.mark_paid"
)

// Menu names guarding whole sections.
const (
	MenuOrders   = "orders"
	MenuPayments = "payments"
	MenuPayouts  = "payouts"
	MenuUsers    = "users"
	MenuProjects = "projects"
	MenuTasks    = "tasks"
	MenuPersonas = "personas"
)

// CRUDPermission builds the "<resource>.<action>" permission name, e.g. projects.create.
func CRUDPermission(resource, action string) string {
	return resource + "." + action
}
