//go:build 386 || arm || mips || mipsle

package platform

// SizeMax is the largest value representable by Size on 32-bit targets.
const SizeMax Size = 1<<31 - 1
