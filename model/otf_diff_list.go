package model

import (
	"encoding/json"

	"github.com/treeverse/lakefs-go/internal/hashing"
)

const (
	OtfDiffListFieldDiffType = "diff_type"
	OtfDiffListFieldResults  = "results"
)

var otfDiffListProperties = []property{
	optional(OtfDiffListFieldDiffType),
	required(OtfDiffListFieldResults).listOf("OtfDiffEntry", otfDiffEntryProperties),
}

// OtfDiffType is the table level outcome of an OTF diff.
type OtfDiffType string

const (
	OtfDiffTypeCreated OtfDiffType = "created"
	OtfDiffTypeDropped OtfDiffType = "dropped"
	OtfDiffTypeChanged OtfDiffType = "changed"
)

// IsKnown reports whether t is one of the enum values of the API document.
func (t OtfDiffType) IsKnown() bool {
	switch t {
	case OtfDiffTypeCreated, OtfDiffTypeDropped, OtfDiffTypeChanged:
		return true
	}
	return false
}

// OtfDiffList is the result of diffing one table between two refs.
type OtfDiffList struct {
	DiffType *OtfDiffType   `json:"diff_type,omitempty"`
	Results  []OtfDiffEntry `json:"results"`
}

// NewOtfDiffList returns a list of results with DiffType absent.
func NewOtfDiffList(results []OtfDiffEntry) *OtfDiffList {
	return &OtfDiffList{Results: nonNilList(results)}
}

func NewOtfDiffListWithDefaults() *OtfDiffList {
	return &OtfDiffList{Results: []OtfDiffEntry{}}
}

// GetDiffType returns the diff type, or "" when absent.
func (l OtfDiffList) GetDiffType() OtfDiffType {
	if l.DiffType == nil {
		return ""
	}
	return *l.DiffType
}

func (l OtfDiffList) GetDiffTypeOk() (OtfDiffType, bool) {
	if l.DiffType == nil {
		return "", false
	}
	return *l.DiffType, true
}

func (l OtfDiffList) HasDiffType() bool {
	return l.DiffType != nil
}

func (l *OtfDiffList) SetDiffType(v OtfDiffType) {
	l.DiffType = &v
}

func (l *OtfDiffList) UnsetDiffType() {
	l.DiffType = nil
}

func (l OtfDiffList) GetResults() []OtfDiffEntry {
	return nonNilList(l.Results)
}

// SetResults stores a copy of v; nil is stored as an empty list.
func (l *OtfDiffList) SetResults(v []OtfDiffEntry) {
	l.Results = nonNilList(cloneList(v))
}

func (l *OtfDiffList) WithDiffType(v OtfDiffType) *OtfDiffList {
	l.SetDiffType(v)
	return l
}

func (l *OtfDiffList) WithResults(v []OtfDiffEntry) *OtfDiffList {
	l.SetResults(v)
	return l
}

// AddResultsItem appends item. Copies of l never share the appended slot.
func (l *OtfDiffList) AddResultsItem(item OtfDiffEntry) *OtfDiffList {
	l.Results = appendItem(l.Results, item)
	return l
}

// Validate rejects a DiffType outside the known enum values.
func (l OtfDiffList) Validate() error {
	problems := validationProblems{model: "OtfDiffList"}
	if l.DiffType != nil && !l.DiffType.IsKnown() {
		problems.add(OtfDiffListFieldDiffType, ReasonEnum)
	}
	return problems.err()
}

// Equal compares DiffType (absent differs from any value) and results in
// order; nil and empty results are equal.
func (l OtfDiffList) Equal(other OtfDiffList) bool {
	if (l.DiffType == nil) != (other.DiffType == nil) {
		return false
	}
	if l.DiffType != nil && *l.DiffType != *other.DiffType {
		return false
	}
	return listEqual(l.Results, other.Results, OtfDiffEntry.Equal)
}

// Hash is consistent with Equal.
func (l OtfDiffList) Hash() uint64 {
	h := hashing.New("OtfDiffList")
	if l.DiffType == nil {
		h.Absent()
	} else {
		h.String(string(*l.DiffType))
	}
	hashList(h, l.Results)
	return h.Sum64()
}

func (l OtfDiffList) String() string {
	diffType := textAbsent
	if l.DiffType != nil {
		diffType = quoteText(string(*l.DiffType))
	}
	return newTextWriter("OtfDiffList").
		field(OtfDiffListFieldDiffType, diffType).
		field(OtfDiffListFieldResults, listText(l.Results)).
		String()
}

func (l OtfDiffList) MarshalJSON() ([]byte, error) {
	type plain OtfDiffList
	v := plain(l)
	v.Results = nonNilList(v.Results)
	return json.Marshal(v)
}

func (l *OtfDiffList) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if err := checkProperties("OtfDiffList", data, otfDiffListProperties...); err != nil {
		return err
	}
	type plain OtfDiffList
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return decodeError("OtfDiffList", err)
	}
	v.Results = nonNilList(v.Results)
	*l = OtfDiffList(v)
	return nil
}

// OtfDiffListBuilder assembles an OtfDiffList.
type OtfDiffListBuilder struct {
	strict   bool
	diffType *OtfDiffType
	results  []OtfDiffEntry
}

func NewOtfDiffListBuilder() *OtfDiffListBuilder {
	return &OtfDiffListBuilder{}
}

// Strict makes Build validate the assembled value.
func (b *OtfDiffListBuilder) Strict() *OtfDiffListBuilder {
	b.strict = true
	return b
}

func (b *OtfDiffListBuilder) DiffType(v OtfDiffType) *OtfDiffListBuilder {
	b.diffType = &v
	return b
}

func (b *OtfDiffListBuilder) Results(v []OtfDiffEntry) *OtfDiffListBuilder {
	b.results = cloneList(v)
	return b
}

func (b *OtfDiffListBuilder) AddResultsItem(item OtfDiffEntry) *OtfDiffListBuilder {
	b.results = append(b.results, item)
	return b
}

// Build returns an independent OtfDiffList, validated when Strict was set.
func (b *OtfDiffListBuilder) Build() (OtfDiffList, error) {
	out := OtfDiffList{Results: cloneList(nonNilList(b.results))}
	if b.diffType != nil {
		dt := *b.diffType
		out.DiffType = &dt
	}
	if b.strict {
		if err := out.Validate(); err != nil {
			return OtfDiffList{}, err
		}
	}
	return out, nil
}
