package model

import (
	"encoding/json"
	"strconv"

	"github.com/treeverse/lakefs-go/internal/hashing"
)

const (
	PaginationFieldHasMore    = "has_more"
	PaginationFieldNextOffset = "next_offset"
	PaginationFieldResults    = "results"
	PaginationFieldMaxPerPage = "max_per_page"
)

var paginationProperties = []property{
	required(PaginationFieldHasMore),
	required(PaginationFieldNextOffset),
	required(PaginationFieldResults),
	required(PaginationFieldMaxPerPage),
}

// Pagination describes one page of a listing.
//
// Property names follow the lakeFS API document: the page size limit is
// max_per_page (there is no max_key property).
type Pagination struct {
	// HasMore reports whether another page follows.
	HasMore bool `json:"has_more"`

	// NextOffset is the token to pass as "after" to fetch the next page.
	NextOffset string `json:"next_offset"`

	// Results is the number of items on this page.
	Results int `json:"results"`

	// MaxPerPage is the server side page size limit.
	MaxPerPage int `json:"max_per_page"`
}

// NewPagination builds a Pagination from all four required properties.
func NewPagination(hasMore bool, nextOffset string, results, maxPerPage int) *Pagination {
	return &Pagination{
		HasMore:    hasMore,
		NextOffset: nextOffset,
		Results:    results,
		MaxPerPage: maxPerPage,
	}
}

func (p Pagination) GetHasMore() bool { return p.HasMore }
func (p Pagination) GetNextOffset() string { return p.NextOffset }
func (p Pagination) GetResults() int { return p.Results }
func (p Pagination) GetMaxPerPage() int { return p.MaxPerPage }
func (p *Pagination) SetHasMore(v bool) { p.HasMore = v }
func (p *Pagination) SetNextOffset(v string) { p.NextOffset = v }
func (p *Pagination) SetResults(v int) { p.Results = v }
func (p *Pagination) SetMaxPerPage(v int) { p.MaxPerPage = v }

func (p *Pagination) WithHasMore(v bool) *Pagination {
	p.HasMore = v
	return p
}

func (p *Pagination) WithNextOffset(v string) *Pagination {
	p.NextOffset = v
	return p
}

func (p *Pagination) WithResults(v int) *Pagination {
	p.Results = v
	return p
}

func (p *Pagination) WithMaxPerPage(v int) *Pagination {
	p.MaxPerPage = v
	return p
}

// Validate checks the minimum: 0 constraints on the counters.
func (p Pagination) Validate() error {
	problems := validationProblems{model: "Pagination"}
	if p.Results < 0 {
		problems.add(PaginationFieldResults, ReasonNegative)
	}
	if p.MaxPerPage < 0 {
		problems.add(PaginationFieldMaxPerPage, ReasonNegative)
	}
	return problems.err()
}

// Equal reports whether all four counters and the offset match.
func (p Pagination) Equal(other Pagination) bool {
	return p == other
}

// Hash is consistent with Equal.
func (p Pagination) Hash() uint64 {
	return hashing.New("Pagination").
		Bool(p.HasMore).
		String(p.NextOffset).
		Int(int64(p.Results)).
		Int(int64(p.MaxPerPage)).
		Sum64()
}

func (p Pagination) String() string {
	return newTextWriter("Pagination").
		field(PaginationFieldHasMore, strconv.FormatBool(p.HasMore)).
		field(PaginationFieldNextOffset, quoteText(p.NextOffset)).
		field(PaginationFieldResults, strconv.Itoa(p.Results)).
		field(PaginationFieldMaxPerPage, strconv.Itoa(p.MaxPerPage)).
		String()
}

func (p *Pagination) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if err := checkProperties("Pagination", data, paginationProperties...); err != nil {
		return err
	}
	type plain Pagination
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return decodeError("Pagination", err)
	}
	*p = Pagination(v)
	return nil
}
