//go:build !amd64 && !arm64

package kernel

import _ "github.com/cwbudde/algo-colsum/internal/kernel/arch/generic"
