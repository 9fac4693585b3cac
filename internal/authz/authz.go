// Package authz implements the authorization core: the role and resource
// model, the static rule table, and the policy engine that evaluates
// whether a subject may perform an action on a resource. Evaluation is a
// pure function of its inputs; the package performs no I/O.
package authz

// Role is a member's role within an organization.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleMember  Role = "MEMBER"
	RoleBilling Role = "BILLING"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleBilling:
		return true
	}
	return false
}

// Action identifies an operation on a resource. The set is closed per
// resource type: a new action requires an explicit rule-table entry.
type Action string

const (
	ActionCreate            Action = "create"
	ActionGet               Action = "get"
	ActionUpdate            Action = "update"
	ActionDelete            Action = "delete"
	ActionTransferOwnership Action = "transfer_ownership"
)

// ResourceType tags the kind of entity an action targets.
type ResourceType string

const (
	ResourceOrganization ResourceType = "Organization"
	ResourceProject      ResourceType = "Project"
	ResourceUser         ResourceType = "User"
	ResourceInvite       ResourceType = "Invite"
	ResourceBilling      ResourceType = "Billing"
)

// Subject is the identity under evaluation. It is derived fresh for each
// request from the caller's resolved membership and is never persisted.
type Subject struct {
	UserID string
	Role   Role
}

// Resource describes the target of an action: its type plus the attributes
// the rules consult. For type-level checks (e.g. "may this role create
// projects at all") use TypeOnly, which carries no attributes.
type Resource struct {
	Type           ResourceType
	OwnerID        string
	OrganizationID string
}

// TypeOnly returns a bare resource descriptor carrying only the type tag.
func TypeOnly(t ResourceType) Resource {
	return Resource{Type: t}
}
