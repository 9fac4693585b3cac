package authz

// Engine evaluates authorization queries against the rule table. It is
// stateless and safe for concurrent use; callers are responsible for
// turning a false result into a user-facing error.
type Engine struct {
	rules *RuleTable
}

// NewEngine creates an Engine backed by the default rule table.
func NewEngine() *Engine {
	return &Engine{rules: newRuleTable()}
}

// Can reports whether the subject may perform the action on the resource.
// Role-level grants are checked first; if none match, the ownership
// override applies when the subject owns the resource instance.
func (e *Engine) Can(s Subject, a Action, r Resource) bool {
	if e.rules.allowsRole(s.Role, r.Type, a) {
		return true
	}
	if r.OwnerID != "" && r.OwnerID == s.UserID {
		return e.rules.allowsOwner(r.Type, a)
	}
	return false
}

// Cannot is the negation of Can, offered for call-site readability.
func (e *Engine) Cannot(s Subject, a Action, r Resource) bool {
	return !e.Can(s, a, r)
}
