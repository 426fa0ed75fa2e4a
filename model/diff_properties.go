package model

import (
	"encoding/json"

	"github.com/treeverse/lakefs-go/internal/hashing"
)

const (
	DiffPropertiesFieldName        = "name"
	DiffPropertiesFieldDescription = "description"
)

var diffPropertiesProperties = []property{
	required(DiffPropertiesFieldName),
	required(DiffPropertiesFieldDescription),
}

// DiffProperties describes one Open Table Format diff plugin offered by the
// server.
type DiffProperties struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewDiffProperties returns the properties of the diff plugin named name.
func NewDiffProperties(name, description string) *DiffProperties {
	return &DiffProperties{Name: name, Description: description}
}

func (d DiffProperties) GetName() string { return d.Name }
func (d DiffProperties) GetDescription() string { return d.Description }
func (d *DiffProperties) SetName(v string) { d.Name = v }
func (d *DiffProperties) SetDescription(v string) { d.Description = v }

func (d *DiffProperties) WithName(v string) *DiffProperties {
	d.Name = v
	return d
}

func (d *DiffProperties) WithDescription(v string) *DiffProperties {
	d.Description = v
	return d
}

// Equal reports whether name and description match.
func (d DiffProperties) Equal(other DiffProperties) bool {
	return d == other
}

// Hash is consistent with Equal.
func (d DiffProperties) Hash() uint64 {
	return hashing.New("DiffProperties").String(d.Name).String(d.Description).Sum64()
}

func (d DiffProperties) String() string {
	return newTextWriter("DiffProperties").
		field(DiffPropertiesFieldName, quoteText(d.Name)).
		field(DiffPropertiesFieldDescription, quoteText(d.Description)).
		String()
}

func (d *DiffProperties) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if err := checkProperties("DiffProperties", data, diffPropertiesProperties...); err != nil {
		return err
	}
	type plain DiffProperties
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return decodeError("DiffProperties", err)
	}
	*d = DiffProperties(v)
	return nil
}
