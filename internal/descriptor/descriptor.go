// Package descriptor generates the ephemeral launch descriptor the
// emulator's custom-topology loader consumes.
//
// The descriptor is a plain JSON file rather than generated code: a
// factory-by-name map in which mnfnss binds exactly one entry. When the
// emulator is told to load a topology by factory name, it resolves the
// name against this map and only then parses the referenced topology file
// and adapts it, so the parse stays deferred until the emulator wants it.
package descriptor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Factory describes one deferred topology construction: parse the file at
// Topology, adapt the resulting graph for the emulator, and relabel node
// names to host/switch conventions unless Relabel is false.
type Factory struct {
	Topology string `json:"topology"`
	Relabel  bool   `json:"relabel"`
}

// Descriptor is the file payload.
type Descriptor struct {
	Factories map[string]Factory `json:"factories"`
}

// Write creates a uniquely named descriptor file in dir binding factory f
// under name. Uniqueness comes from the temp-file facility, so concurrent
// invocations sharing a runtime directory never collide. The caller owns
// the returned path and must remove it once the emulator has exited.
func Write(dir, name string, f Factory) (string, error) {
	if !filepath.IsAbs(f.Topology) {
		return "", fmt.Errorf("descriptor: topology path %q is not absolute", f.Topology)
	}

	tmp, err := os.CreateTemp(dir, "mnfnss-*.json")
	if err != nil {
		return "", fmt.Errorf("creating descriptor: %w", err)
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	err = enc.Encode(Descriptor{Factories: map[string]Factory{name: f}})
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing descriptor: %w", err)
	}
	return tmp.Name(), nil
}
