package model

import (
	"encoding/json"

	"github.com/treeverse/lakefs-go/internal/hashing"
)

const ErrorFieldMessage = "message"

var errorProperties = []property{
	required(ErrorFieldMessage),
}

// Error is the body lakeFS returns with non-2xx responses.
type Error struct {
	Message string `json:"message"`
}

func (e Error) GetMessage() string { return e.Message }
func (e *Error) SetMessage(v string) { e.Message = v }

// Equal reports whether the messages match.
func (e Error) Equal(other Error) bool {
	return e == other
}

func (e Error) Hash() uint64 {
	return hashing.New("Error").String(e.Message).Sum64()
}

func (e Error) String() string {
	return newTextWriter("Error").
		field(ErrorFieldMessage, quoteText(e.Message)).
		String()
}

func (e *Error) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if err := checkProperties("Error", data, errorProperties...); err != nil {
		return err
	}
	type plain Error
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return decodeError("Error", err)
	}
	*e = Error(v)
	return nil
}
