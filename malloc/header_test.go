package malloc

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	cases := []struct {
		next      uint16
		partition uint8
	}{
		{0, 0},
		{0, 254},
		{65535, 0},
		{65535, 255},
		{12345, 17},
	}
	heap := make([]byte, HeaderLength)
	for _, c := range cases {
		writeHeader(heap, 0, c.next, c.partition)
		gotNext, gotPartition := readHeader(heap, 0)
		if gotNext != c.next || gotPartition != c.partition {
			t.Errorf("writeHeader(%v, %v): readHeader returned (%v, %v)",
				c.next, c.partition, gotNext, gotPartition)
		}
	}
}

func TestHeaderLittleEndianByteOrder(t *testing.T) {
	heap := make([]byte, HeaderLength)
	writeHeader(heap, 0, 0x0102, 0xff)
	if heap[0] != 0x02 || heap[1] != 0x01 {
		t.Errorf("expected little-endian byte order, got %v %v", heap[0], heap[1])
	}
	if heap[2] != 0xff {
		t.Errorf("expected the partition index in the third byte, got %v", heap[2])
	}
}
