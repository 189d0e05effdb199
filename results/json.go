package results

import (
	"encoding/json"
	"errors"
)

// resultJSON is the wire form of a Result.  Exactly one of Data and Error is
// present, matching the Ok discriminant.
type resultJSON struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error *string         `json:"error,omitempty"`
}

// MarshalJSON encodes a success as {"ok":true,"data":...} and a failure as
// {"ok":false,"error":"..."}.  The failure error is flattened to its message;
// the concrete error type does not survive a round trip.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		data, err := json.Marshal(r.val)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resultJSON{Ok: true, Data: data})
	}

	msg := ""
	if r.err != nil {
		msg = r.err.Error()
	}
	return json.Marshal(resultJSON{Ok: false, Error: &msg})
}

// UnmarshalJSON decodes the wire form produced by MarshalJSON.  A decoded
// failure carries an opaque error built from the serialized message.
func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var wire resultJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	if !wire.Ok {
		msg := ""
		if wire.Error != nil {
			msg = *wire.Error
		}
		*r = Err[T](errors.New(msg))
		return nil
	}

	var val T
	if wire.Data != nil {
		if err := json.Unmarshal(wire.Data, &val); err != nil {
			return err
		}
	}
	*r = Ok(val)
	return nil
}
