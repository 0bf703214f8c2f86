package record

import (
	"fmt"

	nested "github.com/Obighbyd/dm-accepts-nested-attributes"
)

// Collection is an ordered in-memory set of records of one model. A
// collection hanging off a relationship is bound to its owner and fills the
// owner's foreign key into records it builds.
type Collection struct {
	model      *Model
	records    []*Record
	owner      *Record
	foreignKey string
}

// NewCollection builds a free-standing collection of the model.
func NewCollection(model *Model) *Collection {
	return &Collection{model: model}
}

// Get returns the member whose key matches the given parts, or nil.
func (collection *Collection) Get(key ...interface{}) nested.Resource {
	want := nested.Key(key)
	for _, record := range collection.records {
		if k := record.Key(); k != nil && k.Equal(want) {
			return record
		}
	}
	return nil
}

// New builds a record from the attributes and appends it. The owner's
// foreign key, when bound, is filled in structurally.
func (collection *Collection) New(attributes nested.AttributeMap) nested.Resource {
	record := collection.model.New()
	record.SetAttributes(attributes)
	if collection.owner != nil && collection.foreignKey != "" {
		if key := collection.owner.Key(); len(key) == 1 {
			record.Set(collection.foreignKey, key[0])
		}
	}
	collection.records = append(collection.records, record)
	return record
}

// All returns the members matching every filter entry. A filter value may be
// a resource; a member matches when its field holds that resource or its
// key.
func (collection *Collection) All(filter nested.AttributeMap) []nested.Resource {
	var matched []nested.Resource
	for _, record := range collection.records {
		matches := true
		for name, want := range filter {
			if !matchValue(record.Get(name), want) {
				matches = false
				break
			}
		}
		if matches {
			matched = append(matched, record)
		}
	}
	return matched
}

// Append adds existing records to the collection.
func (collection *Collection) Append(records ...*Record) {
	collection.records = append(collection.records, records...)
}

// Records returns the members in order.
func (collection *Collection) Records() []*Record {
	return collection.records
}

// Len returns the number of members.
func (collection *Collection) Len() int {
	return len(collection.records)
}

func matchValue(value, want interface{}) bool {
	if resource, ok := want.(nested.Resource); ok {
		if value == want {
			return true
		}
		key := resource.Key()
		if len(key) != 1 {
			return false
		}
		want = key[0]
	}
	return fmt.Sprint(value) == fmt.Sprint(want)
}
