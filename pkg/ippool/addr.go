package ippool

import (
	"net/netip"
)

func addrToUint32(a netip.Addr) uint32 {
	b := a.As4()
	return beUint32(b[:])
}

func uint32ToAddr(v uint32) netip.Addr {
	var a4 [4]byte
	bePutUint32(a4[:], v)
	return netip.AddrFrom4(a4)
}

func bePutUint32(b []byte, v uint32) {
	_ = b[3] // early bounds check to guarantee safety of writes below
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func beUint32(b []byte) uint32 {
	_ = b[3] // bounds check hint to compiler; see golang.org/issue/14808
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}
