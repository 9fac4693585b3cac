package authz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngine_DefaultDeny(t *testing.T) {
	engine := NewEngine()

	// Actions not explicitly granted to a role are denied, with or
	// without instance attributes.
	cases := []struct {
		name     string
		subject  Subject
		action   Action
		resource Resource
	}{
		{
			name:     "member cannot create invites",
			subject:  Subject{UserID: "u1", Role: RoleMember},
			action:   ActionCreate,
			resource: TypeOnly(ResourceInvite),
		},
		{
			name:     "member cannot delete the organization",
			subject:  Subject{UserID: "u1", Role: RoleMember},
			action:   ActionDelete,
			resource: Resource{Type: ResourceOrganization, OwnerID: "someone-else"},
		},
		{
			name:     "member cannot see billing",
			subject:  Subject{UserID: "u1", Role: RoleMember},
			action:   ActionGet,
			resource: TypeOnly(ResourceBilling),
		},
		{
			name:     "billing cannot touch projects",
			subject:  Subject{UserID: "u1", Role: RoleBilling},
			action:   ActionCreate,
			resource: TypeOnly(ResourceProject),
		},
		{
			name:     "billing cannot read users",
			subject:  Subject{UserID: "u1", Role: RoleBilling},
			action:   ActionGet,
			resource: TypeOnly(ResourceUser),
		},
		{
			name:     "unknown role gets nothing",
			subject:  Subject{UserID: "u1", Role: Role("AUDITOR")},
			action:   ActionGet,
			resource: TypeOnly(ResourceOrganization),
		},
		{
			name:     "member cannot transfer organization ownership",
			subject:  Subject{UserID: "u1", Role: RoleMember},
			action:   ActionTransferOwnership,
			resource: Resource{Type: ResourceOrganization, OwnerID: "someone-else"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, engine.Can(tc.subject, tc.action, tc.resource))
			require.True(t, engine.Cannot(tc.subject, tc.action, tc.resource))
		})
	}
}

func TestEngine_AdminOverride(t *testing.T) {
	engine := NewEngine()
	admin := Subject{UserID: "admin-1", Role: RoleAdmin}

	types := []ResourceType{
		ResourceOrganization,
		ResourceProject,
		ResourceUser,
		ResourceInvite,
		ResourceBilling,
	}
	actions := []Action{
		ActionCreate,
		ActionGet,
		ActionUpdate,
		ActionDelete,
		ActionTransferOwnership,
	}

	for _, rt := range types {
		for _, a := range actions {
			// Admin is allowed even on instances owned by someone else.
			resource := Resource{Type: rt, OwnerID: "someone-else"}
			require.True(t, engine.Can(admin, a, resource), "ADMIN should be allowed %s on %s", a, rt)
			require.True(t, engine.Can(admin, a, TypeOnly(rt)), "ADMIN should be allowed %s on bare %s", a, rt)
		}
	}
}

func TestEngine_OwnershipOverride(t *testing.T) {
	engine := NewEngine()

	project := Resource{Type: ResourceProject, OwnerID: "u2", OrganizationID: "org-1"}

	for _, role := range []Role{RoleAdmin, RoleMember, RoleBilling} {
		owner := Subject{UserID: "u2", Role: role}
		require.True(t, engine.Can(owner, ActionUpdate, project), "owner with role %s should update own project", role)
		require.True(t, engine.Can(owner, ActionDelete, project), "owner with role %s should delete own project", role)
	}

	// A non-owner member gets no override.
	stranger := Subject{UserID: "u3", Role: RoleMember}
	require.False(t, engine.Can(stranger, ActionUpdate, project))
	require.False(t, engine.Can(stranger, ActionDelete, project))
}

func TestEngine_OwnershipOverrideNotAppliedToTypeOnlyChecks(t *testing.T) {
	engine := NewEngine()

	// A bare descriptor carries no owner, so the override can never
	// fire for type-level checks even when user ids collide with "".
	member := Subject{UserID: "", Role: RoleMember}
	require.False(t, engine.Can(member, ActionUpdate, TypeOnly(ResourceProject)))
}

func TestEngine_MemberGrants(t *testing.T) {
	engine := NewEngine()
	member := Subject{UserID: "u1", Role: RoleMember}

	require.True(t, engine.Can(member, ActionGet, TypeOnly(ResourceOrganization)))
	require.True(t, engine.Can(member, ActionGet, TypeOnly(ResourceUser)))
	require.True(t, engine.Can(member, ActionGet, TypeOnly(ResourceProject)))
	require.True(t, engine.Can(member, ActionCreate, TypeOnly(ResourceProject)))
}

func TestEngine_BillingGrants(t *testing.T) {
	engine := NewEngine()
	billing := Subject{UserID: "u1", Role: RoleBilling}

	require.True(t, engine.Can(billing, ActionGet, TypeOnly(ResourceBilling)))
	require.True(t, engine.Can(billing, ActionUpdate, TypeOnly(ResourceBilling)))
	require.False(t, engine.Can(billing, ActionDelete, TypeOnly(ResourceBilling)))
}

func TestEngine_ProjectDeleteScenario(t *testing.T) {
	// Organization "acme": u1 is ADMIN, u2 is MEMBER. The project is
	// owned by u1.
	engine := NewEngine()
	project := Resource{Type: ResourceProject, OwnerID: "u1", OrganizationID: "acme"}

	u1 := Subject{UserID: "u1", Role: RoleAdmin}
	u2 := Subject{UserID: "u2", Role: RoleMember}

	require.True(t, engine.Can(u1, ActionDelete, project))
	require.False(t, engine.Can(u2, ActionDelete, project))
}

func TestRole_Valid(t *testing.T) {
	require.True(t, RoleAdmin.Valid())
	require.True(t, RoleMember.Valid())
	require.True(t, RoleBilling.Valid())
	require.False(t, Role("OWNER").Valid())
	require.False(t, Role("").Valid())
}
