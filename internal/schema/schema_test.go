package schema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treeverse/lakefs-go/model"
)

func loadRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := Load(context.Background())
	require.NoError(t, err)
	return r
}

func TestLoad_EmbeddedDocument(t *testing.T) {
	r := loadRegistry(t)
	require.Equal(t, []string{
		"DiffProperties",
		"Error",
		"OTFDiffs",
		"OtfDiffEntry",
		"OtfDiffList",
		"Pagination",
		"Ref",
		"RefList",
	}, r.Names())
}

func TestLoadFromData_Invalid(t *testing.T) {
	_, err := LoadFromData(context.Background(), nil)
	require.Error(t, err)

	_, err = LoadFromData(context.Background(), []byte("openapi: [unterminated"))
	require.ErrorContains(t, err, "schema: load document")
}

func TestValidate_Accepts(t *testing.T) {
	r := loadRegistry(t)
	cases := map[string]struct {
		schema  string
		payload string
	}{
		"ref list": {
			schema:  "RefList",
			payload: `{"pagination": {"has_more": false, "next_offset": "", "results": 0, "max_per_page": 100}, "results": []}`,
		},
		"otf diffs absent": {schema: "OTFDiffs", payload: `{}`},
		"otf diffs null":   {schema: "OTFDiffs", payload: `{"diffs": null}`},
		"otf diffs items": {
			schema:  "OTFDiffs",
			payload: `{"diffs": [{"name": "delta", "description": "Delta Lake"}]}`,
		},
		"otf diff list": {
			schema: "OtfDiffList",
			payload: `{"diff_type": "changed", "results": [{
				"id": "1", "timestamp": 1680000000, "operation": "WRITE",
				"operation_content": {}, "operation_type": "update"
			}]}`,
		},
		"error": {schema: "Error", payload: `{"message": "not found"}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, r.Validate(tc.schema, []byte(tc.payload)))
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	r := loadRegistry(t)
	cases := []struct {
		name    string
		schema  string
		payload string
		fields  []string
		reason  string
	}{
		{
			name:    "missing results",
			schema:  "RefList",
			payload: `{"pagination": {"has_more": false, "next_offset": "", "results": 0, "max_per_page": 0}}`,
			fields:  []string{"results"},
			reason:  model.ReasonMissing,
		},
		{
			name:    "null pagination",
			schema:  "RefList",
			payload: `{"pagination": null, "results": []}`,
			fields:  []string{"pagination"},
			reason:  model.ReasonNull,
		},
		{
			name:    "negative page count",
			schema:  "RefList",
			payload: `{"pagination": {"has_more": false, "next_offset": "", "results": -1, "max_per_page": 0}, "results": []}`,
			fields:  []string{"pagination.results"},
			reason:  model.ReasonNegative,
		},
		{
			name:    "item without description",
			schema:  "OTFDiffs",
			payload: `{"diffs": [{"name": "delta"}]}`,
			fields:  []string{"diffs.0.description"},
			reason:  model.ReasonMissing,
		},
		{
			name:    "unknown diff type",
			schema:  "OtfDiffList",
			payload: `{"diff_type": "renamed", "results": []}`,
			fields:  []string{"diff_type"},
			reason:  model.ReasonEnum,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := r.Validate(tc.schema, []byte(tc.payload))
			var ve *model.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tc.schema, ve.Model)
			require.Equal(t, tc.fields, ve.Fields())
			require.Equal(t, tc.reason, ve.Problems[0].Reason)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	r := loadRegistry(t)
	err := r.Validate("Ref", []byte(`{}`))
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"commit_id", "id"}, ve.Fields())
}

func TestValidate_NotJSON(t *testing.T) {
	r := loadRegistry(t)
	err := r.Validate("RefList", []byte(`{"pagination":`))
	var de *model.DeserializationError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "RefList", de.Model)
}

func TestValidate_UnknownSchema(t *testing.T) {
	r := loadRegistry(t)
	require.EqualError(t, r.Validate("Branch", []byte(`{}`)), `schema: unknown schema "Branch"`)
}

func TestFields(t *testing.T) {
	r := loadRegistry(t)

	fields, err := r.Fields("OTFDiffs")
	require.NoError(t, err)
	require.Equal(t, []Field{{Name: "diffs", Type: "[]DiffProperties", Nullable: true}}, fields)

	fields, err = r.Fields("RefList")
	require.NoError(t, err)
	require.Equal(t, []Field{
		{Name: "pagination", Type: "Pagination", Required: true},
		{Name: "results", Type: "[]Ref", Required: true},
	}, fields)

	fields, err = r.Fields("OtfDiffList")
	require.NoError(t, err)
	require.Equal(t, "string enum(created|dropped|changed)", fields[0].Type)
	require.False(t, fields[0].Required)
}

func TestOperations(t *testing.T) {
	r := loadRegistry(t)
	var ids []string
	for _, op := range r.Operations() {
		require.Equal(t, "GET", op.Method)
		ids = append(ids, op.ID)
	}
	require.Equal(t, []string{"healthCheck", "getOtfDiffs", "listBranches", "otfDiff", "listTags"}, ids)
}
