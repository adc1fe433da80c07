package producer

import (
	"strconv"

	"github.com/segmentio/kafka-go"
)

// CustomerBalancer 以customerID對partition數取模
// 同一customer的事件固定落在同一partition，consumer端才有每customer的順序保證
type CustomerBalancer struct{}

func (b *CustomerBalancer) Balance(msg kafka.Message, partitions ...int) (partition int) {
	if len(partitions) == 0 {
		return 0
	}
	customerID, err := strconv.Atoi(string(msg.Key))
	if err != nil {
		// key不是數字時退回hash行為以外的保底分區
		return partitions[0]
	}
	return partitions[customerID%len(partitions)]
}
