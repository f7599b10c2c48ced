package hashpool_test

import (
	"github.com/magic-lib/go-plat-pool/hashpool"
	"testing"
)

func TestRegistry(t *testing.T) {
	reg := hashpool.NewRegistry()
	a := newSlabPool(&hashpool.Config{Namespace: "gpu", Name: "textures", Registry: reg})
	b := newSlabPool(&hashpool.Config{Name: "scratch", Registry: reg})

	if reg.Get("gpu", "textures") != a {
		t.Fatal("namespaced pool not registered")
	}
	if reg.Get("", "scratch") != b {
		t.Fatal("plain pool not registered")
	}
	if reg.Get("", "textures") != nil {
		t.Fatal("namespace ignored")
	}

	env := &slabEnv{}
	a.Lease(slabInfo{Size: 1}, env).Release()
	snap := reg.Snapshot()
	if snap["{gpu}textures"].Idle != 1 || snap["scratch"].Idle != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}

	names := reg.Names()
	if len(names) != 2 || names[0] != "scratch" || names[1] != "{gpu}textures" {
		t.Fatalf("names = %v", names)
	}

	if !reg.Remove("", "scratch") || reg.Remove("", "scratch") {
		t.Fatal("remove")
	}
	reg.Register("", "nil", nil)
	if len(reg.Names()) != 1 {
		t.Fatalf("names = %v", reg.Names())
	}
}

func TestDefaultRegistry(t *testing.T) {
	if hashpool.DefaultRegistry() != hashpool.DefaultRegistry() {
		t.Fatal("default registry not shared")
	}
	p := newSlabPool(&hashpool.Config{Namespace: "test", Name: "default-registry", Registry: hashpool.DefaultRegistry()})
	if hashpool.DefaultRegistry().Get("test", "default-registry") != p {
		t.Fatal("not registered")
	}
	hashpool.DefaultRegistry().Remove("test", "default-registry")
}
