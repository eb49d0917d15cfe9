package models

// Envelope wraps every successful JSON response. Data is always present,
// so a lookup that matched nothing encodes as {"status":true,"data":null}.
type Envelope struct {
	Status bool        `json:"status"`
	Data   interface{} `json:"data"`
}

// Failure is the envelope for a negative answer; it never carries data.
type Failure struct {
	Status bool   `json:"status"`
	Error  string `json:"error,omitempty"`
}

// InsertResult is the JSON form of a single-document insert.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult is the JSON form of a single-document update.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}
