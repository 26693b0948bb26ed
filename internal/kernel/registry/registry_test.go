package registry

import (
	"testing"

	"github.com/cwbudde/algo-colsum/internal/cpu"
)

func TestLookupPrefersPriority(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	r.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	r.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})

	cases := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"all", cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2"},
		{"sse2 only", cpu.Features{HasSSE2: true}, "sse2"},
		{"none", cpu.Features{}, "generic"},
		{"forced generic", cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, "generic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := r.Lookup(tc.features)
			if entry == nil || entry.Name != tc.want {
				t.Fatalf("Lookup() = %v, want %s", entry, tc.want)
			}
		})
	}
}

func TestLookupEmpty(t *testing.T) {
	r := &OpRegistry{}
	if entry := r.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("Lookup() on empty registry = %v, want nil", entry)
	}
}

func TestReset(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "generic"})
	r.Reset()
	if n := len(r.ListEntries()); n != 0 {
		t.Fatalf("ListEntries() after Reset has %d entries", n)
	}
}
