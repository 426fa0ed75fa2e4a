package model

import (
	"encoding/json"

	"github.com/treeverse/lakefs-go/internal/hashing"
)

const (
	RefListFieldPagination = "pagination"
	RefListFieldResults    = "results"
)

var refListProperties = []property{
	required(RefListFieldPagination).object("Pagination", paginationProperties),
	required(RefListFieldResults).listOf("Ref", refProperties),
}

// RefList is one page of branches or tags.
//
// Results is never serialized as null or omitted: a nil slice is written as
// [] and a payload without "results" is rejected.
type RefList struct {
	Pagination Pagination `json:"pagination"`
	Results    []Ref      `json:"results"`
}

// NewRefList builds a RefList from its required properties.
func NewRefList(pagination Pagination, results []Ref) *RefList {
	return &RefList{Pagination: pagination, Results: nonNilList(results)}
}

// NewRefListWithDefaults returns a RefList with an empty Results list.
func NewRefListWithDefaults() *RefList {
	return &RefList{Results: []Ref{}}
}

// GetPagination returns the page metadata.
func (r RefList) GetPagination() Pagination {
	return r.Pagination
}

func (r *RefList) SetPagination(v Pagination) {
	r.Pagination = v
}

// GetResults returns the refs on this page; never nil.
func (r RefList) GetResults() []Ref {
	return nonNilList(r.Results)
}

// SetResults stores a copy of v; nil is stored as an empty list.
func (r *RefList) SetResults(v []Ref) {
	r.Results = nonNilList(cloneList(v))
}

// WithPagination sets the page metadata and returns r for chaining.
func (r *RefList) WithPagination(v Pagination) *RefList {
	r.Pagination = v
	return r
}

// WithResults is SetResults returning r for chaining.
func (r *RefList) WithResults(v []Ref) *RefList {
	r.SetResults(v)
	return r
}

// AddResultsItem appends item. Copies of r never share the appended slot.
func (r *RefList) AddResultsItem(item Ref) *RefList {
	r.Results = appendItem(r.Results, item)
	return r
}

// Validate re-checks the pagination counters of an already built value.
func (r RefList) Validate() error {
	problems := validationProblems{model: "RefList"}
	problems.nested(RefListFieldPagination, r.Pagination.Validate())
	return problems.err()
}

// Equal compares pagination and results element-wise. Nil and empty results
// are equal since both serialize as [].
func (r RefList) Equal(other RefList) bool {
	return r.Pagination.Equal(other.Pagination) &&
		listEqual(r.Results, other.Results, Ref.Equal)
}

// Hash is consistent with Equal: nil and empty results hash alike.
func (r RefList) Hash() uint64 {
	h := hashing.New("RefList").Nested(r.Pagination.Hash())
	hashList(h, r.Results)
	return h.Sum64()
}

func (r RefList) String() string {
	return newTextWriter("RefList").
		field(RefListFieldPagination, r.Pagination.String()).
		field(RefListFieldResults, listText(r.Results)).
		String()
}

func (r RefList) MarshalJSON() ([]byte, error) {
	type plain RefList
	v := plain(r)
	v.Results = nonNilList(v.Results)
	return json.Marshal(v)
}

func (r *RefList) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if err := checkProperties("RefList", data, refListProperties...); err != nil {
		return err
	}
	type plain RefList
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return decodeError("RefList", err)
	}
	v.Results = nonNilList(v.Results)
	*r = RefList(v)
	return nil
}

// RefListBuilder assembles a RefList field by field. It tracks which
// required properties were set so Strict builds can reject omissions.
type RefListBuilder struct {
	strict     bool
	pagination *Pagination
	results    []Ref
}

// NewRefListBuilder returns a lenient builder; see Strict.
func NewRefListBuilder() *RefListBuilder {
	return &RefListBuilder{}
}

// Strict makes Build fail with a *ValidationError when a required property
// was never set or the value does not validate.
func (b *RefListBuilder) Strict() *RefListBuilder {
	b.strict = true
	return b
}

func (b *RefListBuilder) Pagination(v Pagination) *RefListBuilder {
	b.pagination = &v
	return b
}

// Results replaces the results with a copy of v.
func (b *RefListBuilder) Results(v []Ref) *RefListBuilder {
	b.results = cloneList(v)
	return b
}

func (b *RefListBuilder) AddResultsItem(item Ref) *RefListBuilder {
	b.results = append(b.results, item)
	return b
}

// Build returns an independent RefList; later builder calls do not affect it.
func (b *RefListBuilder) Build() (RefList, error) {
	out := RefList{Results: cloneList(nonNilList(b.results))}
	if b.pagination != nil {
		out.Pagination = *b.pagination
	}
	if !b.strict {
		return out, nil
	}
	problems := validationProblems{model: "RefList"}
	if b.pagination == nil {
		problems.add(RefListFieldPagination, ReasonMissing)
	}
	problems.nested(RefListFieldPagination, out.Pagination.Validate())
	if err := problems.err(); err != nil {
		return RefList{}, err
	}
	return out, nil
}
