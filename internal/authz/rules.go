package authz

// grantKey identifies a single role-level grant. The table is keyed by
// explicit tuples so that adding a role or resource type never changes the
// decision for existing combinations.
type grantKey struct {
	Role   Role
	Type   ResourceType
	Action Action
}

// ownerKey identifies an ownership override: the given action on the given
// resource type is granted to the resource's owner regardless of role.
type ownerKey struct {
	Type   ResourceType
	Action Action
}

// RuleTable holds the static authorization rules. The default decision is
// DENY; any single matching grant is sufficient. There are no negative
// rules, so evaluation can exit on the first match.
type RuleTable struct {
	base  map[grantKey]struct{}
	owner map[ownerKey]struct{}
}

func newRuleTable() *RuleTable {
	t := &RuleTable{
		base:  make(map[grantKey]struct{}),
		owner: make(map[ownerKey]struct{}),
	}

	// ADMIN holds every grant (administrative override).
	for _, rt := range []ResourceType{
		ResourceOrganization,
		ResourceProject,
		ResourceUser,
		ResourceInvite,
		ResourceBilling,
	} {
		for _, a := range []Action{
			ActionCreate,
			ActionGet,
			ActionUpdate,
			ActionDelete,
			ActionTransferOwnership,
		} {
			t.grant(RoleAdmin, rt, a)
		}
	}

	// MEMBER may read the organization, its users and its projects, and
	// create projects. Updating or deleting a project is reachable only
	// through the ownership override below.
	t.grant(RoleMember, ResourceOrganization, ActionGet)
	t.grant(RoleMember, ResourceUser, ActionGet)
	t.grant(RoleMember, ResourceProject, ActionGet)
	t.grant(RoleMember, ResourceProject, ActionCreate)

	// BILLING is scoped to billing information only.
	t.grant(RoleBilling, ResourceBilling, ActionGet)
	t.grant(RoleBilling, ResourceBilling, ActionUpdate)

	// Ownership overrides: the owner of an instance may act on it even
	// when their role alone grants nothing.
	t.grantOwner(ResourceProject, ActionUpdate)
	t.grantOwner(ResourceProject, ActionDelete)
	t.grantOwner(ResourceOrganization, ActionUpdate)
	t.grantOwner(ResourceOrganization, ActionDelete)
	t.grantOwner(ResourceOrganization, ActionTransferOwnership)

	return t
}

func (t *RuleTable) grant(r Role, rt ResourceType, a Action) {
	t.base[grantKey{Role: r, Type: rt, Action: a}] = struct{}{}
}

func (t *RuleTable) grantOwner(rt ResourceType, a Action) {
	t.owner[ownerKey{Type: rt, Action: a}] = struct{}{}
}

func (t *RuleTable) allowsRole(r Role, rt ResourceType, a Action) bool {
	_, ok := t.base[grantKey{Role: r, Type: rt, Action: a}]
	return ok
}

func (t *RuleTable) allowsOwner(rt ResourceType, a Action) bool {
	_, ok := t.owner[ownerKey{Type: rt, Action: a}]
	return ok
}
