package descriptor

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrite_Payload(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(dir, "fnss", Factory{Topology: "/topologies/geant.xml", Relabel: true})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("descriptor %q written outside %q", path, dir)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading descriptor: %v", err)
	}
	var d Descriptor
	if err := json.Unmarshal(raw, &d); err != nil {
		t.Fatalf("unmarshaling descriptor: %v", err)
	}

	want := Descriptor{Factories: map[string]Factory{
		"fnss": {Topology: "/topologies/geant.xml", Relabel: true},
	}}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_RelabelFalse(t *testing.T) {
	path, err := Write(t.TempDir(), "fnss", Factory{Topology: "/t.xml", Relabel: false})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading descriptor: %v", err)
	}
	var d Descriptor
	if err := json.Unmarshal(raw, &d); err != nil {
		t.Fatalf("unmarshaling descriptor: %v", err)
	}
	if d.Factories["fnss"].Relabel {
		t.Error("expected relabel=false in payload")
	}
}

func TestWrite_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	f := Factory{Topology: "/t.xml", Relabel: true}

	a, err := Write(dir, "fnss", f)
	if err != nil {
		t.Fatalf("first Write: %v", err)
	}
	b, err := Write(dir, "fnss", f)
	if err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if a == b {
		t.Errorf("two descriptors share the path %q", a)
	}
}

func TestWrite_RejectsRelativeTopology(t *testing.T) {
	_, err := Write(t.TempDir(), "fnss", Factory{Topology: "topo.xml", Relabel: true})
	if err == nil {
		t.Fatal("expected error for relative topology path")
	}
}
