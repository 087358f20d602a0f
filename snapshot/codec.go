package snapshot

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/forestrie/go-idprefix/objectid"
)

// wireRecord is the CBOR form of a Record. Ids travel as raw byte strings,
// not hex text; keyasint keeps the encoding compact and deterministic.
type wireRecord struct {
	CommitID []byte `cbor:"1,keyasint"`
	ChangeID []byte `cbor:"2,keyasint"`
	Hidden   bool   `cbor:"3,keyasint,omitempty"`
}

// Codec encodes and decodes snapshot record batches as deterministic CBOR,
// so a snapshot can be persisted and rebuilt byte-stably without repeating
// the repository walk that produced it.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCodec creates a codec with deterministic (core deterministic profile)
// encoder options.
func NewCodec() (Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

// EncodeRecords serializes the record batch. Records must carry canonical
// length ids (objectid.CommitIDBytes / objectid.ChangeIDBytes).
func (c Codec) EncodeRecords(records []Record) ([]byte, error) {
	wire := make([]wireRecord, 0, len(records))
	for i, r := range records {
		if err := checkRecordIDs(i, r); err != nil {
			return nil, err
		}
		wire = append(wire, wireRecord{
			CommitID: r.CommitID.AsBytes(),
			ChangeID: r.ChangeID.AsBytes(),
			Hidden:   r.Hidden,
		})
	}
	return c.enc.Marshal(wire)
}

// DecodeRecords deserializes a record batch, validating id lengths. The
// result is suitable for NewStore.
func (c Codec) DecodeRecords(data []byte) ([]Record, error) {
	var wire []wireRecord
	if err := c.dec.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(wire))
	for i, w := range wire {
		r := Record{
			CommitID: objectid.NewCommitID(w.CommitID),
			ChangeID: objectid.NewChangeIDFromBytes(w.ChangeID),
			Hidden:   w.Hidden,
		}
		if err := checkRecordIDs(i, r); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func checkRecordIDs(i int, r Record) error {
	if len(r.CommitID) != objectid.CommitIDBytes {
		return fmt.Errorf("%w: record %d: want %d, got %d",
			ErrBadCommitIDLength, i, objectid.CommitIDBytes, len(r.CommitID))
	}
	if len(r.ChangeID) != objectid.ChangeIDBytes {
		return fmt.Errorf("%w: record %d: want %d, got %d",
			ErrBadChangeIDLength, i, objectid.ChangeIDBytes, len(r.ChangeID))
	}
	return nil
}
