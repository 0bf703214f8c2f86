// Package nested resolves nested attribute assignment for object-relational
// associations: given a parent resource and a map or sequence of attribute
// maps for one of its associations, it decides per entry whether to update
// the matching related record, build a new one or mark an existing one for
// destruction, and applies the decision through the relationship's own key
// resolution and persistence collaborators.
package nested

import (
	"fmt"
)

// assignment is the state shared by both engines for one Assign call chain.
// Engines are built fresh per assignment and carry no state across calls
// beyond the first error.
type assignment struct {
	acceptor *Acceptor
	assignee Assignee

	// Error holds the first failure of the chain; later calls are no-ops.
	Error error
}

func (a *assignment) setErr(err error) {
	if err != nil {
		a.Error = err
	}
}

// SingleAssignment resolves nested attributes for a to-one association.
type SingleAssignment struct {
	assignment
	relationship SingleRelationship
}

// CollectionAssignment resolves nested attributes for a to-many association.
type CollectionAssignment struct {
	assignment
	relationship CollectionRelationship
}

// NewSingleAssignment returns the engine for a to-one association. Choosing
// between the single and collection engines is the caller's responsibility,
// driven by the association's cardinality.
func NewSingleAssignment(acceptor *Acceptor, assignee Assignee) *SingleAssignment {
	engine := &SingleAssignment{assignment: assignment{acceptor: acceptor, assignee: assignee}}
	relationship, ok := acceptor.Relationship().(SingleRelationship)
	if !ok {
		engine.setErr(fmt.Errorf("%w: %T is not a to-one relationship", ErrUnsupportedRelationship, acceptor.Relationship()))
		return engine
	}
	engine.relationship = relationship
	return engine
}

// NewCollectionAssignment returns the engine for a to-many association.
func NewCollectionAssignment(acceptor *Acceptor, assignee Assignee) *CollectionAssignment {
	engine := &CollectionAssignment{assignment: assignment{acceptor: acceptor, assignee: assignee}}
	relationship, ok := acceptor.Relationship().(CollectionRelationship)
	if !ok {
		engine.setErr(fmt.Errorf("%w: %T is not a to-many relationship", ErrUnsupportedRelationship, acceptor.Relationship()))
		return engine
	}
	engine.relationship = relationship
	return engine
}

// Assign resolves one attribute map against the currently related record:
// update or destroy it when the extracted key matches, otherwise build and
// attach a new record.
func (engine *SingleAssignment) Assign(attributes AttributeMap) *SingleAssignment {
	if engine.Error != nil {
		return engine
	}
	if attributes == nil {
		engine.setErr(fmt.Errorf("%w: expected an attribute map, got nil", ErrInvalidAttributes))
		return engine
	}
	engine.setErr(engine.resolve(attributes, engine.lookup, engine.attach))
	return engine
}

// lookup is scoped to the record already linked by the relationship. A key
// naming any other record is not an error, it falls through to the create
// path.
func (engine *SingleAssignment) lookup(key Key) Resource {
	existing := engine.relationship.Get(engine.assignee)
	if existing == nil || !existing.Key().Equal(key) {
		return nil
	}
	return existing
}

func (engine *SingleAssignment) attach(attributes AttributeMap) {
	target := engine.relationship.NewTarget()
	target.SetAttributes(attributes)
	engine.relationship.Set(engine.assignee, target)
}

// Assign normalizes the input into an ordered run of attribute maps and
// resolves each one independently against the related collection. Accepted
// shapes are a map of attribute maps, whose outer keys order the run and are
// then discarded, or a sequence of attribute maps. Anything else fails
// before any record is touched. Entries are resolved in order with no
// rollback: a mid-run failure leaves earlier entries applied.
func (engine *CollectionAssignment) Assign(attributes interface{}) *CollectionAssignment {
	if engine.Error != nil {
		return engine
	}
	normalized, err := normalizeAttributeCollection(attributes)
	if err != nil {
		engine.setErr(err)
		return engine
	}
	for _, entry := range normalized {
		if err := engine.resolve(entry, engine.lookup, engine.attach); err != nil {
			engine.setErr(err)
			return engine
		}
	}
	return engine
}

// lookup finds the collection member carrying the extracted key, if any.
func (engine *CollectionAssignment) lookup(key Key) Resource {
	return engine.relationship.Collection(engine.assignee).Get(key...)
}

func (engine *CollectionAssignment) attach(attributes AttributeMap) {
	engine.relationship.Collection(engine.assignee).New(attributes)
}

// resolve runs the four-step resolution for one attribute map: extract the
// target key, update or destroy a matching record, otherwise consult the
// reject rule and build a new record.
func (a *assignment) resolve(attributes AttributeMap, lookup func(Key) Resource, create func(AttributeMap)) error {
	relationship := a.acceptor.Relationship()

	if key := relationship.ExtractKeys(a.assignee, attributes); key != nil {
		if existing := lookup(key); existing != nil {
			if a.acceptor.HasDeleteFlag(attributes) {
				if a.acceptor.AllowDestroy() {
					return a.markDestroyable(existing)
				}
				a.acceptor.logger.Debug("delete flag ignored, association does not allow destroy", key)
			}
			return a.update(existing, attributes)
		}
	}

	if a.acceptor.RejectNewRecord(a.assignee, attributes) {
		a.acceptor.logger.Debug("new nested record rejected", attributes)
		return nil
	}
	create(attributes.Except(a.acceptor.UncreatableKeys(nil)))
	return nil
}

// update bulk assigns everything but the unupdatable keys and persists the
// record. Updating a record that already carries unsaved changes is a usage
// error and aborts the whole assignment; save failures propagate untouched.
func (a *assignment) update(resource Resource, attributes AttributeMap) error {
	if resource.Dirty() || resource.DirtyChildren() {
		return fmt.Errorf("%w: refusing nested update of %v", ErrUpdateConflict, resource.Key())
	}
	resource.SetAttributes(attributes.Except(a.acceptor.UnupdatableKeys(resource)))
	return resource.Save()
}

// markDestroyable queues the resource for deletion on the assignee's next
// save. For many to many associations the join records referencing the
// resource are queued alongside it.
func (a *assignment) markDestroyable(resource Resource) error {
	a.assignee.Destroyables().Append(resource)

	if m2m, ok := a.acceptor.Relationship().(ManyToManyRelationship); ok {
		joins := m2m.Through().Collection(a.assignee).All(AttributeMap{m2m.Via(): resource})
		a.assignee.Destroyables().Append(joins...)
	}
	a.acceptor.logger.Debug("nested record marked for destruction", resource.Key())
	return nil
}
