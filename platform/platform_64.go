//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || sparc64 || wasm

package platform

// SizeMax is the largest value representable by Size on 64-bit targets.
const SizeMax Size = 1<<63 - 1
