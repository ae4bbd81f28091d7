package domain

import (
	"encoding/json"
	"time"
)

// Timestamp is a server-assigned point in time serialized in the Firestore
// wire shape. Clients read the epoch-seconds component and must not rely on
// any other serialization.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Seconds     int64 `json:"_seconds"`
		Nanoseconds int   `json:"_nanoseconds"`
	}{t.Unix(), t.Nanosecond()})
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var raw struct {
		Seconds     int64 `json:"_seconds"`
		Nanoseconds int64 `json:"_nanoseconds"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t.Time = time.Unix(raw.Seconds, raw.Nanoseconds).UTC()
	return nil
}
