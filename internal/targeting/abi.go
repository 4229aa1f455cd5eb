package targeting

import "strings"

// Abi is an enumerated CPU architecture name, using the platform's
// human-readable spellings.
type Abi string

const (
	AbiArmeabi    Abi = "armeabi"
	AbiArmeabiV7a Abi = "armeabi-v7a"
	AbiArm64V8a   Abi = "arm64-v8a"
	AbiX86        Abi = "x86"
	AbiX8664      Abi = "x86_64"
	AbiMips       Abi = "mips"
	AbiMips64     Abi = "mips64"
	AbiRiscv64    Abi = "riscv64"
)

// declaredAbiOrder mirrors the platform enum order. Targeting-set
// comparison needs determinism, not device preference, so canonical ABI
// ordering follows this table rather than the device's preference list.
var declaredAbiOrder = map[Abi]int{
	AbiArmeabi:    1,
	AbiArmeabiV7a: 2,
	AbiArm64V8a:   3,
	AbiX86:        4,
	AbiX8664:      5,
	AbiMips:       6,
	AbiMips64:     7,
	AbiRiscv64:    8,
}

// KnownAbi reports whether name is one of the declared architectures.
func KnownAbi(name string) bool {
	_, ok := declaredAbiOrder[Abi(name)]
	return ok
}

// compareAbis orders known architectures by declared enum position; unknown
// architectures sort after all known ones, by their literal name.
func compareAbis(a, b Abi) int {
	ra, oka := declaredAbiOrder[a]
	rb, okb := declaredAbiOrder[b]
	switch {
	case oka && okb:
		return ra - rb
	case oka:
		return -1
	case okb:
		return 1
	default:
		return strings.Compare(string(a), string(b))
	}
}
