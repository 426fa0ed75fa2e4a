package model

import (
	"encoding/json"

	"github.com/treeverse/lakefs-go/internal/hashing"
)

const (
	RefFieldID       = "id"
	RefFieldCommitID = "commit_id"
)

var refProperties = []property{
	required(RefFieldID),
	required(RefFieldCommitID),
}

// Ref is a named pointer (branch or tag) to a commit.
type Ref struct {
	ID       string `json:"id"`
	CommitID string `json:"commit_id"`
}

// NewRef returns a Ref pointing id at commitID.
func NewRef(id, commitID string) *Ref {
	return &Ref{ID: id, CommitID: commitID}
}

func (r Ref) GetID() string { return r.ID }
func (r Ref) GetCommitID() string { return r.CommitID }
func (r *Ref) SetID(v string) { r.ID = v }
func (r *Ref) SetCommitID(v string) { r.CommitID = v }

func (r *Ref) WithID(v string) *Ref {
	r.ID = v
	return r
}

func (r *Ref) WithCommitID(v string) *Ref {
	r.CommitID = v
	return r
}

// Equal reports whether both fields match.
func (r Ref) Equal(other Ref) bool {
	return r == other
}

// Hash is consistent with Equal.
func (r Ref) Hash() uint64 {
	return hashing.New("Ref").String(r.ID).String(r.CommitID).Sum64()
}

// String renders r field by field for diagnostics.
func (r Ref) String() string {
	return newTextWriter("Ref").
		field(RefFieldID, quoteText(r.ID)).
		field(RefFieldCommitID, quoteText(r.CommitID)).
		String()
}

// UnmarshalJSON rejects payloads missing id or commit_id, or carrying null for
// either. A bare null leaves r unchanged.
func (r *Ref) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if err := checkProperties("Ref", data, refProperties...); err != nil {
		return err
	}
	type plain Ref
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return decodeError("Ref", err)
	}
	*r = Ref(v)
	return nil
}
