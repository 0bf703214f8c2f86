package nested

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// AttributeMap holds the desired state of one nested record, mapping field
// names to values. It may carry the association's delete flag.
type AttributeMap map[string]interface{}

// Except returns a copy of the map without the given keys.
func (attributes AttributeMap) Except(keys KeySet) AttributeMap {
	result := AttributeMap{}
	for name, value := range attributes {
		if !keys.Contains(name) {
			result[name] = value
		}
	}
	return result
}

// KeySet is a set of field names.
type KeySet map[string]struct{}

// NewKeySet builds a set from the given names.
func NewKeySet(names ...string) KeySet {
	set := KeySet{}
	return set.Add(names...)
}

// Add inserts names and returns the receiver.
func (set KeySet) Add(names ...string) KeySet {
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether the name is in the set.
func (set KeySet) Contains(name string) bool {
	_, ok := set[name]
	return ok
}

// Names returns the set's names in sorted order.
func (set KeySet) Names() []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Key is the ordered tuple of values identifying one related record.
type Key []interface{}

// Equal compares keys part by part. Parts of different concrete types count
// as equal when their string forms are, so a key built from form input still
// matches a numeric record key.
func (key Key) Equal(other Key) bool {
	if len(key) == 0 || len(key) != len(other) {
		return false
	}
	for idx, part := range key {
		if fmt.Sprint(part) != fmt.Sprint(other[idx]) {
			return false
		}
	}
	return true
}

// DestroyableSet is the ordered run of resources marked for deletion on the
// owning resource's next persist cycle. Records are queued, never deleted
// here.
type DestroyableSet struct {
	resources []Resource
}

// Append queues resources for destruction.
func (set *DestroyableSet) Append(resources ...Resource) {
	set.resources = append(set.resources, resources...)
}

// Contains reports whether the resource has been queued.
func (set *DestroyableSet) Contains(resource Resource) bool {
	for _, queued := range set.resources {
		if queued == resource {
			return true
		}
	}
	return false
}

// Resources returns the queued resources in marking order.
func (set *DestroyableSet) Resources() []Resource {
	return set.resources
}

// Len returns the number of queued resources.
func (set *DestroyableSet) Len() int {
	return len(set.resources)
}

// Clear empties the set, typically after the owner flushed it.
func (set *DestroyableSet) Clear() {
	set.resources = nil
}

// truthy interprets a delete flag value. Flags arrive as booleans, numbers
// or form strings, so "0", "false", "f", "no" and empty values all read as
// false.
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "0", "f", "false", "no":
			return false
		}
		return true
	}

	reflectValue := reflect.ValueOf(value)
	switch reflectValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflectValue.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflectValue.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return reflectValue.Float() != 0
	case reflect.Ptr, reflect.Interface:
		return !reflectValue.IsNil()
	}
	return true
}

// normalizeAttributeCollection turns the shapes CollectionAssignment accepts
// into one ordered slice of attribute maps, validating every entry before any
// resolution starts. Map input contributes its values ordered by outer key,
// indices compared numerically; outer keys are discarded. Sequence input is
// used as given.
func normalizeAttributeCollection(value interface{}) ([]AttributeMap, error) {
	switch v := value.(type) {
	case []AttributeMap:
		for i, attributes := range v {
			if attributes == nil {
				return nil, fmt.Errorf("%w: sequence element %d is not an attribute map", ErrInvalidAttributes, i)
			}
		}
		return v, nil
	case map[string]AttributeMap:
		keys := make([]string, 0, len(v))
		for key, attributes := range v {
			if attributes == nil {
				return nil, fmt.Errorf("%w: value under %q is not an attribute map", ErrInvalidAttributes, key)
			}
			keys = append(keys, key)
		}
		sortIndexKeys(keys)
		list := make([]AttributeMap, 0, len(v))
		for _, key := range keys {
			list = append(list, v[key])
		}
		return list, nil
	}

	reflectValue := reflect.Indirect(reflect.ValueOf(value))
	if !reflectValue.IsValid() {
		return nil, fmt.Errorf("%w: expected a map or sequence of attribute maps, got nil", ErrInvalidAttributes)
	}

	switch reflectValue.Kind() {
	case reflect.Slice, reflect.Array:
		list := make([]AttributeMap, 0, reflectValue.Len())
		for i := 0; i < reflectValue.Len(); i++ {
			attributes, ok := asAttributeMap(reflectValue.Index(i).Interface())
			if !ok {
				return nil, fmt.Errorf("%w: sequence element %d is not an attribute map", ErrInvalidAttributes, i)
			}
			list = append(list, attributes)
		}
		return list, nil
	case reflect.Map:
		keys := make([]string, 0, reflectValue.Len())
		values := map[string]AttributeMap{}
		for _, reflectKey := range reflectValue.MapKeys() {
			key := fmt.Sprint(reflectKey.Interface())
			attributes, ok := asAttributeMap(reflectValue.MapIndex(reflectKey).Interface())
			if !ok {
				return nil, fmt.Errorf("%w: value under %q is not an attribute map", ErrInvalidAttributes, key)
			}
			keys = append(keys, key)
			values[key] = attributes
		}
		sortIndexKeys(keys)
		list := make([]AttributeMap, 0, len(keys))
		for _, key := range keys {
			list = append(list, values[key])
		}
		return list, nil
	}
	return nil, fmt.Errorf("%w: expected a map or sequence of attribute maps, got %T", ErrInvalidAttributes, value)
}

// asAttributeMap converts any string-keyed map value into an AttributeMap.
func asAttributeMap(value interface{}) (AttributeMap, bool) {
	switch v := value.(type) {
	case AttributeMap:
		return v, v != nil
	case map[string]interface{}:
		return AttributeMap(v), v != nil
	}

	reflectValue := reflect.Indirect(reflect.ValueOf(value))
	if reflectValue.Kind() != reflect.Map || reflectValue.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	attributes := AttributeMap{}
	for _, reflectKey := range reflectValue.MapKeys() {
		attributes[reflectKey.String()] = reflectValue.MapIndex(reflectKey).Interface()
	}
	return attributes, true
}

// sortIndexKeys orders outer map keys, comparing numerically when both keys
// are integers so "10" sorts after "2".
func sortIndexKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		left, leftErr := strconv.ParseInt(keys[i], 10, 64)
		right, rightErr := strconv.ParseInt(keys[j], 10, 64)
		if leftErr == nil && rightErr == nil {
			return left < right
		}
		return keys[i] < keys[j]
	})
}
