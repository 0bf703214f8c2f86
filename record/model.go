// Package record is an in-memory implementation of the nested assignment
// collaborators: map-backed records with saved-state tracking, ordered keyed
// collections and the common relationship shapes. It stands in for a real
// persistence runtime in tests and embedded use.
package record

import (
	"github.com/jinzhu/inflection"

	nested "github.com/Obighbyd/dm-accepts-nested-attributes"
	"github.com/Obighbyd/dm-accepts-nested-attributes/utils"
)

// Model describes one record type: its name, the fields forming its key and
// the defaults new records start from.
type Model struct {
	Name      string
	KeyFields []string
	Defaults  nested.AttributeMap
}

// NewModel builds a model. The name may be given in Go field form or in
// snake_case, "OrderItem" and "order_item" describe the same model. The key
// defaults to a single "id" field.
func NewModel(name string, keyFields ...string) *Model {
	if len(keyFields) == 0 {
		keyFields = []string{"id"}
	}
	return &Model{Name: utils.ToFieldName(name), KeyFields: keyFields}
}

// FieldName returns the Go field form of an attribute name, "street_name"
// becomes "StreetName".
func (model *Model) FieldName(attribute string) string {
	return utils.ToFieldName(attribute)
}

// CollectionName returns the pluralized snake_case name of the model.
func (model *Model) CollectionName() string {
	return inflection.Plural(utils.ToDBName(model.Name))
}

// ForeignKey returns the conventional field name referencing this model from
// another record.
func (model *Model) ForeignKey() string {
	return utils.ToDBName(model.Name) + "_id"
}

// New builds an unsaved record carrying the model's defaults.
func (model *Model) New() *Record {
	record := &Record{model: model, attributes: nested.AttributeMap{}}
	for name, value := range model.Defaults {
		record.attributes[name] = value
	}
	return record
}
