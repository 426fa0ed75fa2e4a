package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const otfDiffListPayload = `{
	"diff_type": "changed",
	"results": [{
		"id": "4",
		"timestamp": 1680000000,
		"operation": "WRITE",
		"operation_content": {"mode": "Append", "partitionBy": "[]"},
		"operation_type": "update"
	}]
}`

func TestOtfDiffList_Unmarshal(t *testing.T) {
	var l OtfDiffList
	require.NoError(t, Unmarshal([]byte(otfDiffListPayload), &l))

	dt, ok := l.GetDiffTypeOk()
	require.True(t, ok)
	require.Equal(t, OtfDiffTypeChanged, dt)
	require.Len(t, l.Results, 1)
	require.Equal(t, "Append", l.Results[0].OperationContent["mode"])
	require.EqualValues(t, 1680000000, l.Results[0].Timestamp)
}

func TestOtfDiffList_RoundTrip(t *testing.T) {
	var want OtfDiffList
	require.NoError(t, Unmarshal([]byte(otfDiffListPayload), &want))

	data, err := json.Marshal(want)
	require.NoError(t, err)
	require.JSONEq(t, otfDiffListPayload, string(data))

	var got OtfDiffList
	require.NoError(t, Unmarshal(data, &got))
	require.True(t, want.Equal(got))
	require.Equal(t, want.Hash(), got.Hash())
}

func TestOtfDiffList_Defaults(t *testing.T) {
	data, err := json.Marshal(OtfDiffList{})
	require.NoError(t, err)
	require.JSONEq(t, `{"results": []}`, string(data))

	var l OtfDiffList
	err = Unmarshal([]byte(`{"diff_type": "created"}`), &l)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"results"}, ve.Fields())
}

func TestOtfDiffList_NullDiffTypeRejected(t *testing.T) {
	var l OtfDiffList
	err := Unmarshal([]byte(`{"diff_type": null, "results": []}`), &l)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, ReasonNull, ve.Problems[0].Reason)
}

func TestOtfDiffList_InvalidEntries(t *testing.T) {
	cases := map[string]struct {
		payload string
		field   string
		reason  string
	}{
		"null entry": {
			payload: `{"results": [null]}`,
			field:   "results.0",
			reason:  ReasonNull,
		},
		"entry without id": {
			payload: `{"results": [{"timestamp": 1, "operation": "WRITE", "operation_content": {}, "operation_type": "update"}]}`,
			field:   "results.0.id",
			reason:  ReasonMissing,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var l OtfDiffList
			err := Unmarshal([]byte(tc.payload), &l)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, "OtfDiffList", ve.Model)
			require.Equal(t, []string{tc.field}, ve.Fields())
			require.Equal(t, tc.reason, ve.Problems[0].Reason)
		})
	}
}

func TestOtfDiffList_ValidateEnum(t *testing.T) {
	l := NewOtfDiffListWithDefaults().WithDiffType("renamed")
	err := l.Validate()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"diff_type"}, ve.Fields())

	l.SetDiffType(OtfDiffTypeDropped)
	require.NoError(t, l.Validate())
	l.UnsetDiffType()
	require.NoError(t, l.Validate())
	require.False(t, l.HasDiffType())
}

func TestOtfDiffListBuilder(t *testing.T) {
	entry := *NewOtfDiffEntry("1", 10, "CREATE TABLE", nil, "create")

	_, err := NewOtfDiffListBuilder().Strict().DiffType("bogus").Build()
	require.Error(t, err)

	built, err := NewOtfDiffListBuilder().Strict().AddResultsItem(entry).DiffType(OtfDiffTypeCreated).Build()
	require.NoError(t, err)

	other := NewOtfDiffList(nil).WithDiffType(OtfDiffTypeCreated).AddResultsItem(entry)
	require.True(t, built.Equal(*other))
	require.Equal(t, built.Hash(), other.Hash())

	lenient, err := NewOtfDiffListBuilder().DiffType("bogus").Build()
	require.NoError(t, err)
	require.Equal(t, OtfDiffType("bogus"), lenient.GetDiffType())
}

func TestOtfDiffList_CopiesAppendIndependently(t *testing.T) {
	x := NewOtfDiffList(make([]OtfDiffEntry, 0, 4))
	y := *x
	x.AddResultsItem(*NewOtfDiffEntry("1", 1, "WRITE", nil, "update"))
	y.AddResultsItem(*NewOtfDiffEntry("2", 2, "DELETE", nil, "delete"))

	require.Equal(t, "1", x.Results[0].ID)
	require.Equal(t, "2", y.Results[0].ID)
}

func TestOtfDiffEntry_ContentEquality(t *testing.T) {
	a := OtfDiffEntry{ID: "1", OperationContent: map[string]any{"a": 1.0, "b": "x"}}
	b := OtfDiffEntry{ID: "1", OperationContent: map[string]any{"b": "x", "a": 1.0}}
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())

	nilContent := OtfDiffEntry{ID: "1"}
	emptyContent := OtfDiffEntry{ID: "1", OperationContent: map[string]any{}}
	require.True(t, nilContent.Equal(emptyContent))
	require.Equal(t, nilContent.Hash(), emptyContent.Hash())

	data, err := json.Marshal(nilContent)
	require.NoError(t, err)
	require.JSONEq(t, `{"id": "1", "timestamp": 0, "operation": "", "operation_content": {}, "operation_type": ""}`, string(data))
}

func TestOtfDiffEntry_String(t *testing.T) {
	e := NewOtfDiffEntry("7", 42, "DELETE", map[string]any{"predicate": "id = 1"}, "delete")
	want := `OtfDiffEntry {
    id: "7"
    timestamp: 42
    operation: "DELETE"
    operation_content: {"predicate":"id = 1"}
    operation_type: "delete"
}`
	require.Equal(t, want, e.String())
}
