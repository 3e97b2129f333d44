package model

import "fmt"

// defaultDevices is the fixed list of native Bitwig devices whose IDs the
// collector asks for. The order is the presentation order of the prompts.
var defaultDevices = []string{
	"EQ+",
	"Polysynth",
	"Phase-4",
	"FM-4",
	"Sampler",
	"Delay+",
	"Compressor+",
	"Limiter",
	"Reverb",
	"Chorus",
	"Flanger",
	"Phaser",
	"Distortion",
	"Filter+",
	"Tool",
	"Poly Grid",
	"FX Grid",
	"Note Grid",
	"Polymer",
	"Drum Machine",
	"Audio Receiver",
	"Note Receiver",
	"HW Instrument",
	"Clip Launcher",
}

// Catalog is an ordered list of device names to process.
// Callers treat it as read-only; DefaultCatalog hands out a fresh copy
// so a caller cannot mutate the package-level list.
type Catalog []string

// DefaultCatalog returns a copy of the built-in device catalog.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(defaultDevices))
	copy(c, defaultDevices)
	return c
}

// Validate checks that every entry is non-empty and appears only once.
// The result mapping relies on unique names: each item is visited exactly
// once, so a duplicate would silently drop the second capture.
func (c Catalog) Validate() error {
	seen := make(map[string]int, len(c))
	for i, name := range c {
		if name == "" {
			return fmt.Errorf("catalog: entry %d has an empty name", i)
		}
		if prev, exists := seen[name]; exists {
			return fmt.Errorf("catalog: %q appears at positions %d and %d", name, prev, i)
		}
		seen[name] = i
	}
	return nil
}

// Contains reports whether name is part of the catalog.
func (c Catalog) Contains(name string) bool {
	for _, n := range c {
		if n == name {
			return true
		}
	}
	return false
}
