package tempus

/*
ts.go implements the Unix-timestamp wire adapter: an absolute instant
serialized as a signed 64-bit count of whole seconds since the epoch.
Deserialization interprets the integer as UTC; an instant outside the
supported year range is a decode error, never a silently clamped
value.
*/

import "encoding/json"

/*
Timestamp wraps an [OffsetDateTime] for wire interchange as a Unix
timestamp. The display offset does not survive a round trip: the
serialized form carries the instant only, and decoded values render
through UTC.
*/
type Timestamp struct {
	OffsetDateTime
}

/*
NewTimestamp returns an instance of [Timestamp] wrapping the given
[OffsetDateTime].
*/
func NewTimestamp(odt OffsetDateTime) Timestamp {
	return Timestamp{OffsetDateTime: odt}
}

/*
MarshalJSON implements [json.Marshaler], emitting the instant of the
receiver instance as a bare integer of whole seconds since the Unix
epoch.
*/
func (r Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.UnixTimestamp())
}

/*
UnmarshalJSON implements [json.Unmarshaler], interpreting a bare
integer as whole seconds since the Unix epoch under UTC. A
[conversionErr] is returned when the instant is not representable.
*/
func (r *Timestamp) UnmarshalJSON(b []byte) error {
	var ts int64
	if err := json.Unmarshal(b, &ts); err != nil {
		return err
	}

	odt, err := FromUnixTimestamp(ts)
	if err != nil {
		return err
	}

	r.OffsetDateTime = odt
	return nil
}

/*
OptionalTimestamp is the optional-value variant of [Timestamp]: a nil
instant marshals to JSON null, and null unmarshals back to a nil
instant, unchanged in either direction.
*/
type OptionalTimestamp struct {
	Value *OffsetDateTime
}

/*
MarshalJSON implements [json.Marshaler] as [Timestamp.MarshalJSON]
does, passing a nil instant through as null.
*/
func (r OptionalTimestamp) MarshalJSON() ([]byte, error) {
	if r.Value == nil {
		return []byte(`null`), nil
	}
	return NewTimestamp(*r.Value).MarshalJSON()
}

/*
UnmarshalJSON implements [json.Unmarshaler] as
[Timestamp.UnmarshalJSON] does, passing null through as a nil instant.
*/
func (r *OptionalTimestamp) UnmarshalJSON(b []byte) error {
	if string(b) == `null` {
		r.Value = nil
		return nil
	}

	var ts Timestamp
	if err := ts.UnmarshalJSON(b); err != nil {
		return err
	}

	odt := ts.OffsetDateTime
	r.Value = &odt
	return nil
}
