package ethutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewAddress(t *testing.T) {
	addr, err := NewAddress("0xABCDEFabcdef0123456789ABCDEFabcdef012345")
	require.NoError(t, err)
	require.Equal(t, Address("0xabcdefabcdef0123456789abcdefabcdef012345"), addr)

	_, err = NewAddress("not-an-address")
	require.Error(t, err)

	_, err = NewAddress("0x1234")
	require.Error(t, err)

	_, err = NewAddress("")
	require.Error(t, err)
}

func Test_Address_Short(t *testing.T) {
	addr := Address("0xabcdefabcdef0123456789abcdefabcdef012345")
	require.Equal(t, "0xabcd...2345", addr.Short())
}
