package encoder

import (
	"reflect"
	"sync"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

var initialiseEncoder sync.Once

func initEncAndDecModes() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}

	decMode, err = cbor.DecOptions{
		MaxArrayElements: 10485760, // Set to a reasonably high value, 10MiB
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Marshal returns the canonical encoding of param v
func Marshal(v any) ([]byte, error) {
	initialiseEncoder.Do(initEncAndDecModes)
	return encMode.Marshal(v)
}

// Unmarshal decodes param v from []byte b
func Unmarshal(b []byte, v any) error {
	initialiseEncoder.Do(initEncAndDecModes)
	return decMode.Unmarshal(b, v)
}

// TestSymmetry checks if a type can be marshalled and unmarshalled with no issues
func TestSymmetry(t *testing.T, value any) {
	t.Helper()
	cborBytes, err := Marshal(value)
	require.NoError(t, err)

	unmarshaled := reflect.New(reflect.TypeOf(value))
	err = Unmarshal(cborBytes, unmarshaled.Interface())
	require.NoError(t, err)
	assert.Equal(t, value, unmarshaled.Elem().Interface())
}
