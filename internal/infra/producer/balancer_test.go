package producer

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestCustomerBalancerStickyPerCustomer(t *testing.T) {
	b := &CustomerBalancer{}
	partitions := []int{0, 1, 2}

	first := b.Balance(kafka.Message{Key: []byte("42")}, partitions...)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, b.Balance(kafka.Message{Key: []byte("42")}, partitions...))
	}
	require.Equal(t, partitions[42%3], first)
}

func TestCustomerBalancerNonNumericKey(t *testing.T) {
	b := &CustomerBalancer{}
	require.Equal(t, 0, b.Balance(kafka.Message{Key: []byte("not-a-number")}, 0, 1, 2))
	require.Equal(t, 0, b.Balance(kafka.Message{Key: []byte("1")}))
}
