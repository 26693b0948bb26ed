//go:build amd64

package kernel

// Imported for their init side effect: each registers its variants.
import (
	_ "github.com/cwbudde/algo-colsum/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-colsum/internal/kernel/arch/unrolled"
)
