package services

import (
	"fmt"
	"strings"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
)

// ResourceLoader loads the resource instance an operation targets, scoped
// to the already-resolved organization, and returns its descriptor. It
// must return a NotFound error when the instance is absent or belongs to
// another organization.
type ResourceLoader func(org *models.Organization) (authz.Resource, error)

// GuardResult carries everything a call site needs once it has been
// authorized.
type GuardResult struct {
	Organization *models.Organization
	Membership   *models.Member
	Subject      authz.Subject
}

// Guard enforces the authorization protocol every privileged operation
// follows: resolve membership, load the target (existence before
// permission), build the subject and ask the engine. The ordering is
// fixed; reordering it changes failure semantics.
type Guard struct {
	resolver *MembershipResolver
	engine   *authz.Engine
}

// NewGuard creates a new Guard.
func NewGuard(resolver *MembershipResolver, engine *authz.Engine) *Guard {
	return &Guard{
		resolver: resolver,
		engine:   engine,
	}
}

// Authorize performs a type-level check ("may this caller create projects
// at all"), with no resource instance involved.
func (g *Guard) Authorize(userID, slug string, action authz.Action, resourceType authz.ResourceType) (*GuardResult, error) {
	return g.authorize(userID, slug, action, func(*models.Organization) (authz.Resource, error) {
		return authz.TypeOnly(resourceType), nil
	})
}

// AuthorizeOrganization checks an instance-level action against the
// resolved organization itself.
func (g *Guard) AuthorizeOrganization(userID, slug string, action authz.Action) (*GuardResult, error) {
	return g.authorize(userID, slug, action, func(org *models.Organization) (authz.Resource, error) {
		return authz.Resource{
			Type:           authz.ResourceOrganization,
			OwnerID:        org.OwnerID,
			OrganizationID: org.ID,
		}, nil
	})
}

// AuthorizeResource checks an instance-level action against a resource
// loaded by the given loader. The load happens after membership
// resolution and before the permission check, so an absent instance
// surfaces as NotFound rather than Unauthorized.
func (g *Guard) AuthorizeResource(userID, slug string, action authz.Action, load ResourceLoader) (*GuardResult, error) {
	return g.authorize(userID, slug, action, load)
}

func (g *Guard) authorize(userID, slug string, action authz.Action, load ResourceLoader) (*GuardResult, error) {
	org, member, err := g.resolver.Resolve(userID, slug)
	if err != nil {
		return nil, err
	}

	resource, err := load(org)
	if err != nil {
		return nil, err
	}

	subject := authz.Subject{UserID: userID, Role: member.Role}
	if g.engine.Cannot(subject, action, resource) {
		return nil, denyError(action, resource.Type)
	}

	return &GuardResult{
		Organization: org,
		Membership:   member,
		Subject:      subject,
	}, nil
}

func denyError(action authz.Action, resourceType authz.ResourceType) error {
	noun := strings.ToLower(string(resourceType))

	var msg string
	switch action {
	case authz.ActionTransferOwnership:
		msg = fmt.Sprintf("You are not allowed to transfer ownership of this %s", noun)
	case authz.ActionGet:
		msg = fmt.Sprintf("You are not allowed to see %s information", noun)
	default:
		msg = fmt.Sprintf("You are not allowed to %s this %s", action, noun)
	}

	return apperrors.Unauthorized(msg)
}
