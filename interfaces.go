package nested

// Resource is a persistable domain record taking part in nested assignment.
type Resource interface {
	// Key returns the ordered tuple of values identifying the record, or nil
	// while the record has no complete key.
	Key() Key
	// SetAttributes bulk assigns field values.
	SetAttributes(attributes AttributeMap)
	// Save persists the record's current state.
	Save() error
	// Dirty reports unsaved local changes.
	Dirty() bool
	// DirtyChildren reports unsaved changes on loaded child records.
	DirtyChildren() bool
}

// Assignee is the parent resource receiving nested attributes.
type Assignee interface {
	Resource
	// Destroyables collects resources marked for deletion on the assignee's
	// next persist cycle.
	Destroyables() *DestroyableSet
}

// Relationship describes one association between the assignee's model and a
// target model.
type Relationship interface {
	// ExtractKeys builds the target key from the attributes, preferring
	// values already present on the currently related record over given
	// ones. Returns nil when no complete key can be produced.
	ExtractKeys(assignee Resource, attributes AttributeMap) Key
	// KeyNames returns the field names identifying a target record.
	KeyNames() []string
	// ForeignKeyNames returns the target field names the relationship fills
	// in itself when attaching a record.
	ForeignKeyNames() []string
	// NewTarget returns a fresh unsaved target record.
	NewTarget() Resource
}

// SingleRelationship is a to-one association.
type SingleRelationship interface {
	Relationship
	// Get returns the currently related record, or nil.
	Get(assignee Resource) Resource
	// Set attaches a record, replacing any prior one.
	Set(assignee Resource, value Resource)
}

// CollectionRelationship is a to-many association.
type CollectionRelationship interface {
	Relationship
	// Collection returns the full related collection of the assignee.
	Collection(assignee Resource) Collection
}

// ManyToManyRelationship is a to-many association through a join model.
type ManyToManyRelationship interface {
	CollectionRelationship
	// Through returns the relationship leading to the join records.
	Through() CollectionRelationship
	// Via returns the join record field referencing the target record.
	Via() string
}

// Collection is an ordered set of related records.
type Collection interface {
	// Get returns the member whose key matches the given parts, or nil.
	Get(key ...interface{}) Resource
	// New builds a record from the attributes and appends it.
	New(attributes AttributeMap) Resource
	// All returns the members matching every filter entry.
	All(filter AttributeMap) []Resource
}
