package nested

import (
	"reflect"

	"github.com/Obighbyd/dm-accepts-nested-attributes/logger"
)

// DefaultDeleteKey is the attribute marking a nested record for destruction
// when no other key is configured.
const DefaultDeleteKey = "_delete"

// RejectFunc decides whether attributes meant for a brand new record should
// be ignored.
type RejectFunc func(assignee Resource, attributes AttributeMap) bool

type rejectKind int

const (
	rejectNone rejectKind = iota
	rejectNamed
	rejectFunc
)

// RejectRule is the reject predicate of one association: absent, the name of
// a method on the assignee, or a plain function. The zero value never
// rejects.
type RejectRule struct {
	kind rejectKind
	name string
	fn   RejectFunc
}

// RejectMethod rejects new records when the named method on the assignee,
// called with the attribute map, returns true.
func RejectMethod(name string) RejectRule {
	return RejectRule{kind: rejectNamed, name: name}
}

// RejectIf rejects new records when fn returns true.
func RejectIf(fn RejectFunc) RejectRule {
	return RejectRule{kind: rejectFunc, fn: fn}
}

// Config carries the declaration-time options of one association's nested
// attribute behavior.
type Config struct {
	// AllowDestroy enables the delete flag; without it a truthy flag is
	// ignored and the record updated normally.
	AllowDestroy bool
	// RejectIf is consulted before any new record is built.
	RejectIf RejectRule
	// DeleteKey overrides DefaultDeleteKey.
	DeleteKey string
	// Logger receives assignment decisions, logger.Default when unset.
	Logger logger.Interface
}

// Acceptor holds the nested attribute configuration of one association. It
// is built once when the association declares the capability and shared,
// immutable, by every assignment engine afterwards.
type Acceptor struct {
	relationship Relationship
	allowDestroy bool
	rejectIf     RejectRule
	deleteKey    string
	logger       logger.Interface
}

// NewAcceptor builds the acceptor for one relationship.
func NewAcceptor(relationship Relationship, config Config) *Acceptor {
	deleteKey := config.DeleteKey
	if deleteKey == "" {
		deleteKey = DefaultDeleteKey
	}
	log := config.Logger
	if log == nil {
		log = logger.Default
	}
	return &Acceptor{
		relationship: relationship,
		allowDestroy: config.AllowDestroy,
		rejectIf:     config.RejectIf,
		deleteKey:    deleteKey,
		logger:       log,
	}
}

// Relationship returns the association this acceptor configures.
func (acceptor *Acceptor) Relationship() Relationship {
	return acceptor.relationship
}

// AllowDestroy reports whether truthy delete flags may destroy records.
func (acceptor *Acceptor) AllowDestroy() bool {
	return acceptor.allowDestroy
}

// DeleteKey returns the delete flag's attribute name.
func (acceptor *Acceptor) DeleteKey() string {
	return acceptor.deleteKey
}

// HasDeleteFlag reports whether the attributes carry a truthy delete flag.
func (acceptor *Acceptor) HasDeleteFlag(attributes AttributeMap) bool {
	return truthy(attributes[acceptor.deleteKey])
}

// ManyToMany reports whether the association runs through a join model.
func (acceptor *Acceptor) ManyToMany() bool {
	_, ok := acceptor.relationship.(ManyToManyRelationship)
	return ok
}

// RejectNewRecord consults the reject rule for attributes that would build a
// brand new record. Keyed updates never pass through here.
func (acceptor *Acceptor) RejectNewRecord(assignee Resource, attributes AttributeMap) bool {
	switch acceptor.rejectIf.kind {
	case rejectNamed:
		return acceptor.callNamedCheck(assignee, attributes)
	case rejectFunc:
		return acceptor.rejectIf.fn(assignee, attributes)
	}
	return false
}

// callNamedCheck resolves the configured method on the assignee's dynamic
// type. The method must take the attribute map and return a bool; anything
// else logs a warning and does not reject.
func (acceptor *Acceptor) callNamedCheck(assignee Resource, attributes AttributeMap) bool {
	method := reflect.ValueOf(assignee).MethodByName(acceptor.rejectIf.name)
	if !method.IsValid() {
		acceptor.logger.Warn("reject method not found on assignee", acceptor.rejectIf.name)
		return false
	}

	methodType := method.Type()
	if methodType.NumIn() != 1 || !reflect.TypeOf(attributes).AssignableTo(methodType.In(0)) ||
		methodType.NumOut() != 1 || methodType.Out(0).Kind() != reflect.Bool {
		acceptor.logger.Warn("reject method must take an attribute map and return bool", acceptor.rejectIf.name)
		return false
	}

	results := method.Call([]reflect.Value{reflect.ValueOf(attributes)})
	return results[0].Bool()
}

// UncreatableKeys are the attribute names a brand new record must not receive
// directly: the foreign keys the relationship fills in structurally, plus the
// delete flag.
func (acceptor *Acceptor) UncreatableKeys(resource Resource) KeySet {
	return NewKeySet(acceptor.relationship.ForeignKeyNames()...).Add(acceptor.deleteKey)
}

// UnupdatableKeys are the attribute names an update must not touch: the keys
// identifying the record, plus the delete flag.
func (acceptor *Acceptor) UnupdatableKeys(resource Resource) KeySet {
	return NewKeySet(acceptor.relationship.KeyNames()...).Add(acceptor.deleteKey)
}
