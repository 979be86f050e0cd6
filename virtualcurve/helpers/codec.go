package helpers

import (
	"bytes"

	bin "github.com/gagliardetto/binary"

	"github.com/solkitdev/virtualcurve-go/virtualcurve/shared"
)

// Borsh round-trips for snapshot caching and test fixtures. This is the
// engine's own layout, not the on-chain account layout; decoding live
// accounts stays with the caller.

func EncodePoolSnapshot(pool *shared.VirtualPool) ([]byte, error) {
	var buf bytes.Buffer
	if err := bin.NewBorshEncoder(&buf).Encode(pool); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodePoolSnapshot(data []byte) (*shared.VirtualPool, error) {
	var out shared.VirtualPool
	if err := bin.NewBorshDecoder(data).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func EncodeConfigSnapshot(config *shared.PoolConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := bin.NewBorshEncoder(&buf).Encode(config); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeConfigSnapshot(data []byte) (*shared.PoolConfig, error) {
	var out shared.PoolConfig
	if err := bin.NewBorshDecoder(data).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
