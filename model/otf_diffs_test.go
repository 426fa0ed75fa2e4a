package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var (
	deltaDiff   = *NewDiffProperties("delta", "Delta Lake table history diff")
	icebergDiff = *NewDiffProperties("iceberg", "Iceberg snapshot diff")
)

func TestOTFDiffs_AbsentDiffsAreOmitted(t *testing.T) {
	out, err := json.Marshal(*NewOTFDiffs())
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(out))
}

func TestOTFDiffs_AddDiffsItem(t *testing.T) {
	d := NewOTFDiffs().AddDiffsItem(deltaDiff)

	if diff := cmp.Diff([]DiffProperties{deltaDiff}, d.GetDiffs()); diff != "" {
		t.Fatalf("GetDiffs mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"diffs": [{"name": "delta", "description": "Delta Lake table history diff"}]}`, string(out))

	d.AddDiffsItem(icebergDiff)
	require.Equal(t, []DiffProperties{deltaDiff, icebergDiff}, d.GetDiffs())
}

func TestOTFDiffs_AddDiffsItemAfterNull(t *testing.T) {
	var d OTFDiffs
	d.SetDiffsNull()
	d.AddDiffsItem(deltaDiff)
	require.True(t, d.HasDiffs())
	require.Len(t, d.GetDiffs(), 1)
}

func TestOTFDiffs_States(t *testing.T) {
	cases := []struct {
		name      string
		value     func() OTFDiffs
		wire      string
		specified bool
		null      bool
	}{
		{
			name:  "absent",
			value: func() OTFDiffs { return OTFDiffs{} },
			wire:  `{}`,
		},
		{
			name:  "null",
			value: func() OTFDiffs {
				var d OTFDiffs
				d.SetDiffsNull()
				return d
			},
			wire:      `{"diffs": null}`,
			specified: true,
			null:      true,
		},
		{
			name:      "empty",
			value:     func() OTFDiffs { return *NewOTFDiffs().WithDiffs(nil) },
			wire:      `{"diffs": []}`,
			specified: true,
		},
		{
			name:      "one item",
			value:     func() OTFDiffs { return *NewOTFDiffs().AddDiffsItem(icebergDiff) },
			wire:      `{"diffs": [{"name": "iceberg", "description": "Iceberg snapshot diff"}]}`,
			specified: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := tc.value()
			out, err := json.Marshal(want)
			require.NoError(t, err)
			require.JSONEq(t, tc.wire, string(out))

			var got OTFDiffs
			require.NoError(t, Unmarshal([]byte(tc.wire), &got))
			require.Equal(t, tc.specified, got.Diffs.IsSpecified())
			require.Equal(t, tc.null, got.Diffs.IsNull())
			require.True(t, want.Equal(got), "round trip changed value:\nwant %s\ngot  %s", want, got)
			require.Equal(t, want.Hash(), got.Hash())
		})
	}
}

func TestOTFDiffs_AbsentNullAndEmptyDiffer(t *testing.T) {
	absent := OTFDiffs{}
	var null OTFDiffs
	null.SetDiffsNull()
	empty := *NewOTFDiffs().WithDiffs([]DiffProperties{})

	require.False(t, absent.Equal(null))
	require.False(t, absent.Equal(empty))
	require.False(t, null.Equal(empty))

	_, ok := absent.GetDiffsOk()
	require.False(t, ok)
	_, ok = null.GetDiffsOk()
	require.False(t, ok)
	diffs, ok := empty.GetDiffsOk()
	require.True(t, ok)
	require.Empty(t, diffs)
}

func TestOTFDiffs_CopiesAppendIndependently(t *testing.T) {
	var x OTFDiffs
	x.SetDiffs(make([]DiffProperties, 0, 4))
	y := x
	x.AddDiffsItem(deltaDiff)
	y.AddDiffsItem(icebergDiff)

	require.Equal(t, []DiffProperties{deltaDiff}, x.GetDiffs())
	require.Equal(t, []DiffProperties{icebergDiff}, y.GetDiffs())

	src := []DiffProperties{deltaDiff}
	x.SetDiffs(src)
	src[0] = icebergDiff
	require.Equal(t, []DiffProperties{deltaDiff}, x.GetDiffs())
}

func TestOTFDiffs_UnsetDiffs(t *testing.T) {
	d := NewOTFDiffs().AddDiffsItem(deltaDiff)
	d.UnsetDiffs()
	require.False(t, d.Diffs.IsSpecified())
	require.True(t, d.Equal(OTFDiffs{}))
}

func TestOTFDiffs_EqualityIndependentOfBuildOrder(t *testing.T) {
	a := NewOTFDiffsBuilder().AddDiffsItem(deltaDiff).AddDiffsItem(icebergDiff).Build()
	b := NewOTFDiffsBuilder().NullDiffs().Diffs([]DiffProperties{deltaDiff, icebergDiff}).Build()
	c := NewOTFDiffs().WithDiffs([]DiffProperties{deltaDiff}).AddDiffsItem(icebergDiff)

	require.True(t, a.Equal(b))
	require.True(t, a.Equal(*c))
	require.Equal(t, a.Hash(), b.Hash())
	require.Equal(t, a.Hash(), c.Hash())

	reversed := NewOTFDiffsBuilder().AddDiffsItem(icebergDiff).AddDiffsItem(deltaDiff).Build()
	require.False(t, a.Equal(reversed))
}

func TestOTFDiffsBuilder_BuildIsIndependent(t *testing.T) {
	b := NewOTFDiffsBuilder().AddDiffsItem(deltaDiff)
	first := b.Build()
	b.AddDiffsItem(icebergDiff)

	require.Len(t, first.GetDiffs(), 1)
	require.Len(t, b.Build().GetDiffs(), 2)
	require.False(t, NewOTFDiffsBuilder().Build().Diffs.IsSpecified())
	require.True(t, NewOTFDiffsBuilder().NullDiffs().Build().Diffs.IsNull())
}

func TestOTFDiffs_InvalidItem(t *testing.T) {
	var d OTFDiffs
	err := Unmarshal([]byte(`{"diffs": [{"name": "delta"}]}`), &d)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "OTFDiffs", ve.Model)
	require.Equal(t, []string{"diffs.0.description"}, ve.Fields())

	err = Unmarshal([]byte(`{"diffs": {"name": "delta"}}`), &d)
	var de *DeserializationError
	require.ErrorAs(t, err, &de)
}

func TestOTFDiffs_NullItemRejected(t *testing.T) {
	var d OTFDiffs
	err := Unmarshal([]byte(`{"diffs": [{"name": "delta", "description": "x"}, null]}`), &d)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "OTFDiffs", ve.Model)
	require.Equal(t, []string{"diffs.1"}, ve.Fields())
	require.Equal(t, ReasonNull, ve.Problems[0].Reason)

	err = Unmarshal([]byte(`{"diffs": [null]}`), &d)
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"diffs.0"}, ve.Fields())

	require.NoError(t, Unmarshal([]byte(`{"diffs": null}`), &d))
	require.True(t, d.Diffs.IsNull())
}

func TestOTFDiffs_String(t *testing.T) {
	require.Equal(t, "OTFDiffs {\n    diffs: <absent>\n}", OTFDiffs{}.String())

	var null OTFDiffs
	null.SetDiffsNull()
	require.Equal(t, "OTFDiffs {\n    diffs: null\n}", null.String())

	one := NewOTFDiffs().AddDiffsItem(deltaDiff)
	want := `OTFDiffs {
    diffs: [
        DiffProperties {
            name: "delta"
            description: "Delta Lake table history diff"
        },
    ]
}`
	require.Equal(t, want, one.String())
}
