package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'reveal.dom'
func tracer() tracing.Trace {
	return tracing.Select("reveal.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     clip-path: inset(0 100% 0 0)
//
// a property value of "inset(0 100% 0 0)" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Groups -------------------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
// A tween animates a handful of properties only. We split them up into
// organisatorial groups nevertheless, as the tweening engine treats them
// differently (e.g., clipping is interpolated as a shape, transforms are
// composed into a matrix).
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction, property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Whitespace around values is trimmed, inner whitespace is collapsed.
func (pg *PropertyGroup) Set(key string, p Property) {
	p = Property(strings.Join(strings.Fields(string(p)), " "))
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if _, exists := pg.Get(key); !exists {
		pg.Set(key, p)
	}
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("clip-path") => "Clip"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGClip       = "Clip"
	PGTransform  = "Transform"
	PGVisibility = "Visibility"
	PGX          = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"clip-path":  PGClip, // Clip
	"clip":       PGClip,
	"x":          PGTransform, // Transform
	"y":          PGTransform,
	"scale":      PGTransform,
	"rotate":     PGTransform,
	"transform":  PGTransform,
	"opacity":    PGVisibility, // Visibility
	"visibility": PGVisibility,
	"display":    PGVisibility,
	"autoAlpha":  PGVisibility,
}

// --- Property Map ----------------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the state a tween starts from or ends in: it
// contains zero or more property groups.
type PropertyMap struct {
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

// MapOf creates a property map from a list of key-value pairs.
func MapOf(kvs ...KeyValue) *PropertyMap {
	pmap := NewPropertyMap()
	for _, kv := range kvs {
		pmap.Add(kv.Key, kv.Value)
	}
	return pmap
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, name := range pmap.groupNames() {
		s += pmap.m[name].String()
	}
	s += "}"
	return s
}

func (pmap *PropertyMap) groupNames() []string {
	if pmap == nil {
		return nil
	}
	names := make([]string, 0, len(pmap.m))
	for name := range pmap.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Add adds a property to this property map, e.g.,
//
//    pm.Add("clip-path", "circle(0%)")
//
// Existing values are overwritten.
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		tracer().Errorf("cannot add property %s to nil property map", key)
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Properties returns all properties of the map, sorted by group and key.
func (pmap *PropertyMap) Properties() []KeyValue {
	var r []KeyValue
	for _, name := range pmap.groupNames() {
		r = append(r, pmap.m[name].Properties()...)
	}
	return r
}

// Merge returns a new property map with all the properties of pmap, overwritten
// by the properties of other. Neither pmap nor other are modified.
func (pmap *PropertyMap) Merge(other *PropertyMap) *PropertyMap {
	merged := NewPropertyMap()
	for _, kv := range pmap.Properties() {
		merged.Add(kv.Key, kv.Value)
	}
	for _, kv := range other.Properties() {
		merged.Add(kv.Key, kv.Value)
	}
	return merged
}
