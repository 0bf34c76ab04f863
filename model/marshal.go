package model

import (
	"bytes"
	"fmt"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/solverkit/lplex"
	"github.com/solverkit/lplex/logger"
)

// serializedModel wraps a Model with the library version that produced it so
// that stale caches can be rejected on load.
type serializedModel struct {
	Version string `cbor:"1,keyasint"`
	Model   Model  `cbor:"2,keyasint"`
}

// ToBytes serializes the model using deterministic CBOR encoding, prefixed
// with the lplex version.
func (m *Model) ToBytes() ([]byte, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := enc.NewEncoder(buf).Encode(serializedModel{
		Version: lplex.Version.String(),
		Model:   *m,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromBytes deserializes a model previously produced by ToBytes. It fails if
// the data was written by an incompatible (different major) library version.
func (m *Model) FromBytes(data []byte) error {
	var s serializedModel
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	objectVersion, err := semver.Parse(s.Version)
	if err != nil {
		return fmt.Errorf("invalid serialization header version %q: %w", s.Version, err)
	}
	if objectVersion.Major != lplex.Version.Major {
		return fmt.Errorf("serialized model version %s is incompatible with lplex %s", objectVersion, lplex.Version)
	}
	if objectVersion.GT(lplex.Version) {
		log := logger.Logger()
		log.Warn().Str("binary", lplex.Version.String()).Str("object", objectVersion.String()).Msg("model was serialized by a newer lplex version")
	}
	*m = s.Model
	return nil
}
