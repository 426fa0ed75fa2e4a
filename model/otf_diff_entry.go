package model

import (
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/treeverse/lakefs-go/internal/hashing"
)

const (
	OtfDiffEntryFieldID               = "id"
	OtfDiffEntryFieldTimestamp        = "timestamp"
	OtfDiffEntryFieldOperation        = "operation"
	OtfDiffEntryFieldOperationContent = "operation_content"
	OtfDiffEntryFieldOperationType    = "operation_type"
)

var otfDiffEntryProperties = []property{
	required(OtfDiffEntryFieldID),
	required(OtfDiffEntryFieldTimestamp),
	required(OtfDiffEntryFieldOperation),
	required(OtfDiffEntryFieldOperationContent),
	required(OtfDiffEntryFieldOperationType),
}

// OtfDiffEntry is one table history operation reported by an OTF diff.
type OtfDiffEntry struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Operation string `json:"operation"`

	// OperationContent is the free-form operation payload. A nil map is
	// written as {}.
	OperationContent map[string]any `json:"operation_content"`

	// OperationType is the change kind, e.g. "create", "update", "delete".
	OperationType string `json:"operation_type"`
}

// NewOtfDiffEntry builds an entry from its required properties; nil content
// becomes an empty object.
func NewOtfDiffEntry(id string, timestamp int64, operation string, content map[string]any, operationType string) *OtfDiffEntry {
	if content == nil {
		content = map[string]any{}
	}
	return &OtfDiffEntry{
		ID:               id,
		Timestamp:        timestamp,
		Operation:        operation,
		OperationContent: content,
		OperationType:    operationType,
	}
}

func (e OtfDiffEntry) GetID() string { return e.ID }
func (e OtfDiffEntry) GetTimestamp() int64 { return e.Timestamp }
func (e OtfDiffEntry) GetOperation() string { return e.Operation }
func (e OtfDiffEntry) GetOperationContent() map[string]any { return e.OperationContent }
func (e OtfDiffEntry) GetOperationType() string { return e.OperationType }
func (e *OtfDiffEntry) SetID(v string) { e.ID = v }
func (e *OtfDiffEntry) SetTimestamp(v int64) { e.Timestamp = v }
func (e *OtfDiffEntry) SetOperation(v string) { e.Operation = v }
func (e *OtfDiffEntry) SetOperationContent(v map[string]any) { e.OperationContent = v }
func (e *OtfDiffEntry) SetOperationType(v string) { e.OperationType = v }

// Equal compares every field; operation content is compared structurally and
// nil equals an empty map.
func (e OtfDiffEntry) Equal(other OtfDiffEntry) bool {
	return e.ID == other.ID &&
		e.Timestamp == other.Timestamp &&
		e.Operation == other.Operation &&
		e.OperationType == other.OperationType &&
		contentEqual(e.OperationContent, other.OperationContent)
}

// contentEqual treats nil and empty content as equal, matching Hash.
func contentEqual(a, b map[string]any) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// Hash is consistent with Equal and independent of map iteration order.
func (e OtfDiffEntry) Hash() uint64 {
	h := hashing.New("OtfDiffEntry").
		String(e.ID).
		Int(e.Timestamp).
		String(e.Operation).
		String(e.OperationType)
	if len(e.OperationContent) == 0 {
		h.List(0)
	} else {
		h.Any(e.OperationContent)
	}
	return h.Sum64()
}

func (e OtfDiffEntry) String() string {
	content := e.OperationContent
	if content == nil {
		content = map[string]any{}
	}
	return newTextWriter("OtfDiffEntry").
		field(OtfDiffEntryFieldID, quoteText(e.ID)).
		field(OtfDiffEntryFieldTimestamp, strconv.FormatInt(e.Timestamp, 10)).
		field(OtfDiffEntryFieldOperation, quoteText(e.Operation)).
		field(OtfDiffEntryFieldOperationContent, jsonText(content)).
		field(OtfDiffEntryFieldOperationType, quoteText(e.OperationType)).
		String()
}

func (e OtfDiffEntry) MarshalJSON() ([]byte, error) {
	type plain OtfDiffEntry
	v := plain(e)
	if v.OperationContent == nil {
		v.OperationContent = map[string]any{}
	}
	return json.Marshal(v)
}

func (e *OtfDiffEntry) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if err := checkProperties("OtfDiffEntry", data, otfDiffEntryProperties...); err != nil {
		return err
	}
	type plain OtfDiffEntry
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return decodeError("OtfDiffEntry", err)
	}
	*e = OtfDiffEntry(v)
	return nil
}
