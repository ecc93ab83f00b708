package wal

import "hash/crc32"

// checksum covers the frame header and payload of a record.
func checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

func checksumValid(data []byte, sum uint32) bool {
	return checksum(data) == sum
}
