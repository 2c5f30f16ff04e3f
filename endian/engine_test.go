package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	require.Equal(t, byte(0x02), bytes[0], "little endian should put LSB first")
	require.Equal(t, byte(0x01), bytes[1], "little endian should put MSB second")
	require.Equal(t, testValue, engine.Uint16(bytes))
}

func TestGetLittleEndianEngineUint32(t *testing.T) {
	engine := GetLittleEndianEngine()

	var testValue uint32 = 0x01020304
	bytes := make([]byte, 4)
	engine.PutUint32(bytes, testValue)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, bytes)
	require.Equal(t, testValue, engine.Uint32(bytes))
}

func TestGetLittleEndianEngineUint64(t *testing.T) {
	engine := GetLittleEndianEngine()

	var testValue uint64 = 0x0102030405060708
	bytes := make([]byte, 8)
	engine.PutUint64(bytes, testValue)
	require.Equal(t, testValue, engine.Uint64(bytes))
}
