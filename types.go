package lakefs

import (
	"github.com/treeverse/lakefs-go/generated"
	"github.com/treeverse/lakefs-go/model"
)

// Typed API models (aliases of the model package).
//
// These aliases let consumers import just "github.com/treeverse/lakefs-go" for types.

type Pagination = model.Pagination
type Ref = model.Ref
type RefList = model.RefList
type RefListBuilder = model.RefListBuilder

type DiffProperties = model.DiffProperties
type OTFDiffs = model.OTFDiffs
type OTFDiffsBuilder = model.OTFDiffsBuilder

type OtfDiffType = model.OtfDiffType
type OtfDiffEntry = model.OtfDiffEntry
type OtfDiffList = model.OtfDiffList
type OtfDiffListBuilder = model.OtfDiffListBuilder

// APIErrorBody is the lakeFS error document carried by APIStatusError.
type APIErrorBody = model.Error

// Request parameter types of the generated client.

type ListBranchesParams = generated.ListBranchesParams
type ListTagsParams = generated.ListTagsParams
type OtfDiffParams = generated.OtfDiffParams
