// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// KDFArgon2id is the only key-derivation function ever written to disk.
const KDFArgon2id = "argon2id"

const (
	// KeyLen is the derived key size: 256 bits for both supported ciphers.
	KeyLen = 32
	// SaltLen is the random salt size written with every encryption.
	SaltLen = 16

	// maxMemoryKiB is a little over six times the desktop cost.
	maxMemoryKiB   = 128 * 1024
	maxIterations  = 64
	maxParallelism = 64
)

// KDFParams are the Argon2id cost parameters.
type KDFParams struct {
	// MemoryKiB is the memory cost in KiB.
	MemoryKiB uint32
	// Iterations is the time cost.
	Iterations uint32
	// Parallelism is the number of lanes.
	Parallelism uint8
}

// Fixed parameter sets. Files written before parameters were stored used one
// of these, depending on the platform that wrote them.
var (
	// DesktopParams is the cost used on desktop builds.
	DesktopParams = KDFParams{MemoryKiB: 19456, Iterations: 2, Parallelism: 1}
	// MobileParams is the reduced cost used on Android and iOS builds.
	MobileParams = KDFParams{MemoryKiB: 8192, Iterations: 2, Parallelism: 1}
)

// PlatformParams returns the parameter set compiled in for this platform.
func PlatformParams() KDFParams {
	return platformParams
}

// HistoricalParams lists every parameter set that was ever used implicitly,
// the one for this platform first.
func HistoricalParams() []KDFParams {
	out := []KDFParams{platformParams}
	for _, p := range []KDFParams{DesktopParams, MobileParams} {
		if p != platformParams {
			out = append(out, p)
		}
	}
	return out
}

// ParamsFor maps a profile name from configuration to a parameter set.
// The empty name selects [PlatformParams].
func ParamsFor(profile string) (KDFParams, error) {
	switch profile {
	case "":
		return platformParams, nil
	case "desktop":
		return DesktopParams, nil
	case "mobile":
		return MobileParams, nil
	default:
		return KDFParams{}, fmt.Errorf("%w: unknown kdf profile %q", ErrInvalidKDFParams, profile)
	}
}

// Validate rejects parameters read from untrusted files that would make
// argon2 panic or allocate unreasonable amounts of memory.
func (p KDFParams) Validate() error {
	if p.MemoryKiB == 0 || p.MemoryKiB > maxMemoryKiB {
		return fmt.Errorf("%w: memory %d KiB", ErrInvalidKDFParams, p.MemoryKiB)
	}
	if p.Iterations == 0 || p.Iterations > maxIterations {
		return fmt.Errorf("%w: iterations %d", ErrInvalidKDFParams, p.Iterations)
	}
	if p.Parallelism == 0 || p.Parallelism > maxParallelism {
		return fmt.Errorf("%w: parallelism %d", ErrInvalidKDFParams, p.Parallelism)
	}
	return nil
}
