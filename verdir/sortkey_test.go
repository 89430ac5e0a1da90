package verdir

import "testing"

func Test_SortKey_ThreeComponents(t *testing.T) {
	key := SortKey("go-ethereum-0.9.36")
	want := 0*1000000 + 9*1000 + 36
	if key != want {
		t.Errorf("expected %d, got %d", want, key)
	}
}

func Test_SortKey_MajorDominates(t *testing.T) {
	if SortKey("proj-2.0.0") <= SortKey("proj-1.999.999") {
		t.Error("expected major version to dominate minor and patch")
	}
}

func Test_SortKey_FourComponentsUsesFirstThree(t *testing.T) {
	// "0.9.21.1" keys on 0.9.21; the trailing run is ignored.
	if SortKey("go-ethereum-0.9.21.1") != SortKey("go-ethereum-0.9.21") {
		t.Error("expected fourth digit run to be ignored")
	}
}

func Test_SortKey_MalformedNameIsZero(t *testing.T) {
	for _, name := range []string{"go-ethereum", "snapshot-1.2", "notes", ""} {
		if SortKey(name) != 0 {
			t.Errorf("expected key 0 for %q, got %d", name, SortKey(name))
		}
	}
}

func Test_SortKey_Deterministic(t *testing.T) {
	name := "go-ethereum-1.4.19"
	if SortKey(name) != SortKey(name) {
		t.Error("expected identical keys for identical names")
	}
}

func Test_sortByVersion_Ascending(t *testing.T) {
	dirs := []string{"p-1.2.1", "p-0.5.19", "p-1.0.0", "p-0.9.36"}
	sortByVersion(dirs)

	want := []string{"p-0.5.19", "p-0.9.36", "p-1.0.0", "p-1.2.1"}
	for i := range want {
		if dirs[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], dirs[i])
		}
	}
}

func Test_sortByVersion_StableForEqualKeys(t *testing.T) {
	// Both malformed names key to 0 and must keep encounter order.
	dirs := []string{"p-1.0.0", "zebra", "alpha"}
	sortByVersion(dirs)

	if dirs[0] != "zebra" || dirs[1] != "alpha" {
		t.Errorf("expected malformed names first in encounter order, got %v", dirs)
	}
	if dirs[2] != "p-1.0.0" {
		t.Errorf("expected versioned name last, got %v", dirs)
	}
}

func Test_sortByVersion_KeysOnBaseName(t *testing.T) {
	// Digit runs in parent path components must not affect ordering.
	dirs := []string{"v2/proj-1.0.0", "v1/proj-2.0.0"}
	sortByVersion(dirs)

	if dirs[0] != "v2/proj-1.0.0" {
		t.Errorf("expected sort by base name, got %v", dirs)
	}
}
