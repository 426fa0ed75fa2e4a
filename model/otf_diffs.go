package model

import (
	"encoding/json"

	"github.com/oapi-codegen/nullable"

	"github.com/treeverse/lakefs-go/internal/hashing"
)

const OTFDiffsFieldDiffs = "diffs"

var otfDiffsProperties = []property{
	optionalNullable(OTFDiffsFieldDiffs).listOf("DiffProperties", diffPropertiesProperties),
}

// OTFDiffs lists the Open Table Format diff plugins available on the server.
//
// Diffs has three states: unspecified (omitted on the wire), null, and a
// list (possibly empty, written as []).
type OTFDiffs struct {
	Diffs nullable.Nullable[[]DiffProperties] `json:"diffs,omitempty"`
}

// NewOTFDiffs returns an OTFDiffs with Diffs unspecified.
func NewOTFDiffs() *OTFDiffs {
	return &OTFDiffs{}
}

// GetDiffs returns the diffs list, or nil when unspecified or null.
func (o OTFDiffs) GetDiffs() []DiffProperties {
	if !o.Diffs.IsSpecified() || o.Diffs.IsNull() {
		return nil
	}
	return o.Diffs.MustGet()
}

// GetDiffsOk returns the diffs list and whether it holds a value.
func (o OTFDiffs) GetDiffsOk() ([]DiffProperties, bool) {
	if !o.HasDiffs() {
		return nil, false
	}
	return o.Diffs.MustGet(), true
}

// HasDiffs reports whether Diffs holds a list (possibly empty).
func (o OTFDiffs) HasDiffs() bool {
	return o.Diffs.IsSpecified() && !o.Diffs.IsNull()
}

// SetDiffs stores a copy of v; a nil slice is stored as an empty list.
func (o *OTFDiffs) SetDiffs(v []DiffProperties) {
	o.Diffs = nullable.NewNullableWithValue(nonNilList(cloneList(v)))
}

// SetDiffsNull marks Diffs as an explicit null.
func (o *OTFDiffs) SetDiffsNull() {
	o.Diffs = nullable.NewNullNullable[[]DiffProperties]()
}

// UnsetDiffs returns Diffs to the unspecified state, omitted on the wire.
func (o *OTFDiffs) UnsetDiffs() {
	o.Diffs = nil
}

// WithDiffs is SetDiffs returning o for chaining.
func (o *OTFDiffs) WithDiffs(v []DiffProperties) *OTFDiffs {
	o.SetDiffs(v)
	return o
}

// AddDiffsItem appends item, creating the list on first use or after null.
// Copies of o never share the appended slot.
func (o *OTFDiffs) AddDiffsItem(item DiffProperties) *OTFDiffs {
	o.Diffs = nullable.NewNullableWithValue(appendItem(o.GetDiffs(), item))
	return o
}

// Equal distinguishes unspecified, null and empty Diffs, then compares
// elements in order.
func (o OTFDiffs) Equal(other OTFDiffs) bool {
	return nullableListEqual(o.Diffs, other.Diffs, DiffProperties.Equal)
}

// Hash is consistent with Equal: the three Diffs states hash differently.
func (o OTFDiffs) Hash() uint64 {
	h := hashing.New("OTFDiffs")
	hashNullableList(h, o.Diffs)
	return h.Sum64()
}

func (o OTFDiffs) String() string {
	return newTextWriter("OTFDiffs").
		field(OTFDiffsFieldDiffs, nullableListText(o.Diffs)).
		String()
}

func (o OTFDiffs) MarshalJSON() ([]byte, error) {
	type plain OTFDiffs
	v := plain(o)
	if o.HasDiffs() && o.Diffs.MustGet() == nil {
		v.Diffs = nullable.NewNullableWithValue([]DiffProperties{})
	}
	return json.Marshal(v)
}

func (o *OTFDiffs) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if err := checkProperties("OTFDiffs", data, otfDiffsProperties...); err != nil {
		return err
	}
	type plain OTFDiffs
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return decodeError("OTFDiffs", err)
	}
	*o = OTFDiffs(v)
	return nil
}

// OTFDiffsBuilder assembles an OTFDiffs value.
type OTFDiffsBuilder struct {
	diffs nullable.Nullable[[]DiffProperties]
}

func NewOTFDiffsBuilder() *OTFDiffsBuilder {
	return &OTFDiffsBuilder{}
}

func (b *OTFDiffsBuilder) Diffs(v []DiffProperties) *OTFDiffsBuilder {
	b.diffs = nullable.NewNullableWithValue(cloneList(nonNilList(v)))
	return b
}

// NullDiffs sets Diffs to an explicit null.
func (b *OTFDiffsBuilder) NullDiffs() *OTFDiffsBuilder {
	b.diffs = nullable.NewNullNullable[[]DiffProperties]()
	return b
}

func (b *OTFDiffsBuilder) AddDiffsItem(item DiffProperties) *OTFDiffsBuilder {
	var current []DiffProperties
	if b.diffs.IsSpecified() && !b.diffs.IsNull() {
		current = b.diffs.MustGet()
	}
	b.diffs = nullable.NewNullableWithValue(append(current, item))
	return b
}

// Build returns an independent OTFDiffs; OTFDiffs has no required
// properties so Build never fails.
func (b *OTFDiffsBuilder) Build() OTFDiffs {
	var out OTFDiffs
	switch {
	case !b.diffs.IsSpecified():
	case b.diffs.IsNull():
		out.SetDiffsNull()
	default:
		out.SetDiffs(cloneList(b.diffs.MustGet()))
	}
	return out
}
