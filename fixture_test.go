package nested_test

import (
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"gotest.tools/v3/assert"

	nested "github.com/Obighbyd/dm-accepts-nested-attributes"
	"github.com/Obighbyd/dm-accepts-nested-attributes/record"
)

// Attribute runs often arrive from serialized payloads; this drives the
// collection engine with a YAML fixture end to end.
func TestCollectionAssignmentFromYAML(t *testing.T) {
	raw, err := os.ReadFile("testdata/addresses.yaml")
	assert.NilError(t, err)

	var run []nested.AttributeMap
	assert.NilError(t, yaml.Unmarshal(raw, &run))
	assert.Equal(t, 3, len(run))

	person := savedPerson(t, 42)
	relationship := record.NewHasMany("addresses", personModel, addressModel)
	collection := relationship.Collection(person).(*record.Collection)
	peter := savedAddress(t, collection, nested.AttributeMap{"id": 1, "name": "Pete"})
	doomed := savedAddress(t, collection, nested.AttributeMap{"id": 2, "name": "Rud"})

	acceptor := nested.NewAcceptor(relationship, nested.Config{AllowDestroy: true})
	engine := nested.NewCollectionAssignment(acceptor, person).Assign(run)
	assert.NilError(t, engine.Error)

	assert.Equal(t, "Peter", peter.Get("name"))
	assert.Equal(t, 3, collection.Len())
	created := collection.All(nested.AttributeMap{"name": "John"})
	assert.Equal(t, 1, len(created))
	assert.Equal(t, "Broadway 12", created[0].(*record.Record).Get("street"))
	assert.Assert(t, person.Destroyables().Contains(doomed))
}
