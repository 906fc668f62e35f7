package address_test

import (
	"net/netip"
	"testing"

	"lincloud/core/address"
	"lincloud/core/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayHost(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.0.0.0", "127.0.0.1"},
		{"127.0.0.1", "127.0.0.1"},
		{"192.168.1.10", "192.168.1.10"},
		{"::", "[::]"},
		{"::1", "[::1]"},
		{"fe80::1%eth0", "[fe80::1%eth0]"},
		{"::ffff:10.0.0.1", "[::ffff:10.0.0.1]"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, address.DisplayHost(netip.MustParseAddr(tt.in)))
		})
	}
}

func TestTranslate(t *testing.T) {
	t.Run("IPv4Wildcard", func(t *testing.T) {
		eps, err := address.Translate([]netip.Addr{netip.MustParseAddr("0.0.0.0")}, 8136)
		require.NoError(t, err)
		require.Len(t, eps, 1)

		assert.Equal(t, "127.0.0.1:8136", eps[0].HostPort())
		assert.Equal(t, "0.0.0.0:8136", eps[0].Bind.String())
		assert.Equal(t, "tcp4", eps[0].Network())
		assert.Equal(t, "http://127.0.0.1:8136", eps[0].URL("http"))
	})

	t.Run("IPv6Loopback", func(t *testing.T) {
		eps, err := address.Translate([]netip.Addr{netip.MustParseAddr("::1")}, 8136)
		require.NoError(t, err)
		require.Len(t, eps, 1)

		assert.Equal(t, "[::1]:8136", eps[0].HostPort())
		assert.Equal(t, "[::1]:8136", eps[0].Bind.String())
		assert.Equal(t, "tcp6", eps[0].Network())
	})

	t.Run("IPv4MappedListensAsIPv4", func(t *testing.T) {
		eps, err := address.Translate([]netip.Addr{netip.MustParseAddr("::ffff:127.0.0.1")}, 8136)
		require.NoError(t, err)
		require.Len(t, eps, 1)

		assert.Equal(t, "tcp4", eps[0].Network())
		assert.Equal(t, "127.0.0.1:8136", eps[0].ListenAddress())
		assert.Equal(t, "[::ffff:127.0.0.1]:8136", eps[0].HostPort())
	})

	t.Run("ZoneEscapedInURL", func(t *testing.T) {
		eps, err := address.Translate([]netip.Addr{netip.MustParseAddr("fe80::1%eth0")}, 8136)
		require.NoError(t, err)
		require.Len(t, eps, 1)

		assert.Equal(t, "http://[fe80::1%25eth0]:8136", eps[0].URL("http"))
		assert.Equal(t, "[fe80::1%eth0]:8136", eps[0].HostPort())
		assert.Equal(t, "[fe80::1%eth0]", eps[0].Display)
		assert.Equal(t, "tcp6", eps[0].Network())
	})

	t.Run("DefaultPairKeepsOrder", func(t *testing.T) {
		in := []netip.Addr{netip.MustParseAddr("::"), netip.MustParseAddr("0.0.0.0")}
		eps, err := address.Translate(in, 8080)
		require.NoError(t, err)

		assert.Equal(t, []string{"http://[::]:8080", "http://127.0.0.1:8080"}, address.URLs(eps, "http"))
		assert.Equal(t, "[::]:8080", eps[0].Bind.String())
		assert.Equal(t, "0.0.0.0:8080", eps[1].Bind.String())
		assert.Equal(t, in[0], eps[0].Interface)
	})

	t.Run("Duplicates", func(t *testing.T) {
		ip := netip.MustParseAddr("10.0.0.1")
		eps, err := address.Translate([]netip.Addr{ip, ip}, 80)
		require.NoError(t, err)
		assert.Len(t, eps, 2)
	})

	t.Run("AtomicFailure", func(t *testing.T) {
		in := []netip.Addr{
			netip.MustParseAddr("127.0.0.1"),
			{},
			netip.MustParseAddr("::1"),
		}
		eps, err := address.Translate(in, 8136)
		assert.Nil(t, eps)
		assert.True(t, apperror.IsKind(err, apperror.KindParse))
		assert.Contains(t, err.Error(), "invalid IP:8136")
		assert.Contains(t, err.Error(), "caused by")
	})
}
