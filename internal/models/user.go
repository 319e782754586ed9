package models

import "encoding/json"

// ProductCreator pairs a locally stored product with its creator fetched from
// the user service. The creator payload is relayed opaquely; user records are
// owned entirely by the remote service.
type ProductCreator struct {
	Product *Product        `json:"product"`
	Creator json.RawMessage `json:"creator"`
}
