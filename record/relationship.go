package record

import (
	nested "github.com/Obighbyd/dm-accepts-nested-attributes"
)

// backing unwraps the record behind a resource.
func backing(resource nested.Resource) *Record {
	switch v := resource.(type) {
	case *Record:
		return v
	case Backed:
		return v.Backing()
	}
	return nil
}

// extractKeys builds the target key from the attributes. Values already on
// the related record win over given ones; a missing part means no key.
func extractKeys(keyFields []string, existing *Record, attributes nested.AttributeMap) nested.Key {
	key := make(nested.Key, 0, len(keyFields))
	for _, name := range keyFields {
		var value interface{}
		if existing != nil {
			value = existing.Get(name)
		}
		if value == nil {
			value = attributes[name]
		}
		if value == nil {
			return nil
		}
		key = append(key, value)
	}
	return key
}

// HasOne is a to-one association storing its target on the owning record.
type HasOne struct {
	Name   string
	Owner  *Model
	Target *Model
}

// NewHasOne builds a to-one relationship from owner to target.
func NewHasOne(name string, owner, target *Model) *HasOne {
	return &HasOne{Name: name, Owner: owner, Target: target}
}

// ExtractKeys prefers the currently related record's key values over given
// ones.
func (relationship *HasOne) ExtractKeys(assignee nested.Resource, attributes nested.AttributeMap) nested.Key {
	var existing *Record
	if current := relationship.Get(assignee); current != nil {
		existing = backing(current)
	}
	return extractKeys(relationship.Target.KeyFields, existing, attributes)
}

// KeyNames returns the target's key field names.
func (relationship *HasOne) KeyNames() []string {
	return relationship.Target.KeyFields
}

// ForeignKeyNames returns the owner's foreign key on the target.
func (relationship *HasOne) ForeignKeyNames() []string {
	return []string{relationship.Owner.ForeignKey()}
}

// NewTarget returns a fresh unsaved target record.
func (relationship *HasOne) NewTarget() nested.Resource {
	return relationship.Target.New()
}

// Get returns the currently related record, or nil.
func (relationship *HasOne) Get(assignee nested.Resource) nested.Resource {
	record := backing(assignee)
	if target, ok := record.association(relationship.Name).(*Record); ok && target != nil {
		return target
	}
	return nil
}

// Set attaches the record, replacing any prior one and filling in the
// owner's foreign key.
func (relationship *HasOne) Set(assignee nested.Resource, value nested.Resource) {
	record := backing(assignee)
	target := backing(value)
	if key := record.Key(); len(key) == 1 {
		target.Set(relationship.Owner.ForeignKey(), key[0])
	}
	record.setAssociation(relationship.Name, target)
}

// HasMany is a to-many association keeping its members in a collection bound
// to the owning record.
type HasMany struct {
	Name   string
	Owner  *Model
	Target *Model
}

// NewHasMany builds a to-many relationship from owner to target.
func NewHasMany(name string, owner, target *Model) *HasMany {
	return &HasMany{Name: name, Owner: owner, Target: target}
}

// ExtractKeys builds the target key from the attributes alone; to-many
// lookups resolve against the whole collection afterwards.
func (relationship *HasMany) ExtractKeys(assignee nested.Resource, attributes nested.AttributeMap) nested.Key {
	return extractKeys(relationship.Target.KeyFields, nil, attributes)
}

// KeyNames returns the target's key field names.
func (relationship *HasMany) KeyNames() []string {
	return relationship.Target.KeyFields
}

// ForeignKeyNames returns the owner's foreign key on the target.
func (relationship *HasMany) ForeignKeyNames() []string {
	return []string{relationship.Owner.ForeignKey()}
}

// NewTarget returns a fresh unsaved target record.
func (relationship *HasMany) NewTarget() nested.Resource {
	return relationship.Target.New()
}

// Collection returns the assignee's related collection, creating and caching
// an owner-bound one on first use.
func (relationship *HasMany) Collection(assignee nested.Resource) nested.Collection {
	record := backing(assignee)
	if existing, ok := record.association(relationship.Name).(*Collection); ok {
		return existing
	}
	collection := &Collection{model: relationship.Target, owner: record, foreignKey: relationship.Owner.ForeignKey()}
	record.setAssociation(relationship.Name, collection)
	return collection
}

// ManyToMany links owner and target through a join model. The join records
// reference the target through the Via field.
type ManyToMany struct {
	Name      string
	Owner     *Model
	Target    *Model
	JoinModel *Model
	ViaField  string
}

// NewManyToMany builds a many-to-many relationship through the join model,
// with via defaulting to the target's conventional foreign key.
func NewManyToMany(name string, owner, target, join *Model) *ManyToMany {
	return &ManyToMany{
		Name:      name,
		Owner:     owner,
		Target:    target,
		JoinModel: join,
		ViaField:  target.ForeignKey(),
	}
}

// ExtractKeys builds the target key from the attributes alone.
func (relationship *ManyToMany) ExtractKeys(assignee nested.Resource, attributes nested.AttributeMap) nested.Key {
	return extractKeys(relationship.Target.KeyFields, nil, attributes)
}

// KeyNames returns the target's key field names.
func (relationship *ManyToMany) KeyNames() []string {
	return relationship.Target.KeyFields
}

// ForeignKeyNames returns nil: the linking keys live on the join records,
// not on the target.
func (relationship *ManyToMany) ForeignKeyNames() []string {
	return nil
}

// NewTarget returns a fresh unsaved target record.
func (relationship *ManyToMany) NewTarget() nested.Resource {
	return relationship.Target.New()
}

// Collection returns the assignee's related target collection.
func (relationship *ManyToMany) Collection(assignee nested.Resource) nested.Collection {
	record := backing(assignee)
	if existing, ok := record.association(relationship.Name).(*Collection); ok {
		return existing
	}
	collection := &Collection{model: relationship.Target}
	record.setAssociation(relationship.Name, collection)
	return collection
}

// Through returns the relationship leading to the join records.
func (relationship *ManyToMany) Through() nested.CollectionRelationship {
	return &HasMany{Name: relationship.Name + " through", Owner: relationship.Owner, Target: relationship.JoinModel}
}

// Via returns the join record field referencing the target.
func (relationship *ManyToMany) Via() string {
	return relationship.ViaField
}
