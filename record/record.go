package record

import (
	"reflect"

	"github.com/google/uuid"

	nested "github.com/Obighbyd/dm-accepts-nested-attributes"
)

// Record is a map-backed resource. Dirtiness is the difference between the
// current attributes and the snapshot taken on the last save; a never-saved
// record is always dirty.
type Record struct {
	model        *Model
	attributes   nested.AttributeMap
	saved        nested.AttributeMap
	children     []*Record
	associations map[string]interface{}
	destroyables nested.DestroyableSet
	saveErr      error
}

// Backed is implemented by resources backed by a Record, letting wrapper
// types with extra behavior take part in record relationships.
type Backed interface {
	Backing() *Record
}

// Backing returns the record itself.
func (record *Record) Backing() *Record {
	return record
}

// Model returns the record's model.
func (record *Record) Model() *Model {
	return record.model
}

// Get returns one attribute value.
func (record *Record) Get(name string) interface{} {
	return record.attributes[name]
}

// Set assigns one attribute value.
func (record *Record) Set(name string, value interface{}) {
	record.attributes[name] = value
}

// Attributes returns a copy of the current attributes.
func (record *Record) Attributes() nested.AttributeMap {
	attributes := make(nested.AttributeMap, len(record.attributes))
	for name, value := range record.attributes {
		attributes[name] = value
	}
	return attributes
}

// Key returns the record's key tuple, or nil while any key field is unset.
func (record *Record) Key() nested.Key {
	key := make(nested.Key, 0, len(record.model.KeyFields))
	for _, name := range record.model.KeyFields {
		value, ok := record.attributes[name]
		if !ok || value == nil {
			return nil
		}
		key = append(key, value)
	}
	return key
}

// SetAttributes bulk assigns field values.
func (record *Record) SetAttributes(attributes nested.AttributeMap) {
	for name, value := range attributes {
		record.attributes[name] = value
	}
}

// Save snapshots the attributes. A record with a single key field and no key
// yet gets a generated one.
func (record *Record) Save() error {
	if record.saveErr != nil {
		err := record.saveErr
		record.saveErr = nil
		return err
	}
	if record.Key() == nil && len(record.model.KeyFields) == 1 {
		record.attributes[record.model.KeyFields[0]] = uuid.NewString()
	}
	record.saved = record.Attributes()
	return nil
}

// FailNextSave makes the next Save return err, for exercising persistence
// failures.
func (record *Record) FailNextSave(err error) {
	record.saveErr = err
}

// NewRecord reports whether the record has never been saved.
func (record *Record) NewRecord() bool {
	return record.saved == nil
}

// Dirty reports unsaved local changes.
func (record *Record) Dirty() bool {
	if record.saved == nil {
		return true
	}
	return !reflect.DeepEqual(map[string]interface{}(record.attributes), map[string]interface{}(record.saved))
}

// DirtyChildren reports unsaved changes anywhere below this record.
func (record *Record) DirtyChildren() bool {
	for _, child := range record.children {
		if child.Dirty() || child.DirtyChildren() {
			return true
		}
	}
	return false
}

// AddChildren registers records whose unsaved changes block nested updates
// of this record.
func (record *Record) AddChildren(children ...*Record) {
	record.children = append(record.children, children...)
}

// Destroyables returns the set of records queued for deletion on this
// record's next persist cycle.
func (record *Record) Destroyables() *nested.DestroyableSet {
	return &record.destroyables
}

func (record *Record) association(name string) interface{} {
	if record.associations == nil {
		return nil
	}
	return record.associations[name]
}

func (record *Record) setAssociation(name string, value interface{}) {
	if record.associations == nil {
		record.associations = map[string]interface{}{}
	}
	record.associations[name] = value
}
