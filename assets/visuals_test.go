package assets

import "testing"

func TestVisualsBuildOnce(t *testing.T) {
	v := NewVisuals()
	if v.Builds() != 0 {
		t.Fatalf("Builds() = %d before first use, want 0", v.Builds())
	}

	spike := v.Spike()
	if v.Spike() != spike {
		t.Error("Spike() returned a different mesh on the second call")
	}
	flag := v.Checkpoint()
	if v.Checkpoint() != flag {
		t.Error("Checkpoint() returned a different mesh on the second call")
	}

	if v.Builds() != 2 {
		t.Errorf("Builds() = %d, want 2", v.Builds())
	}
	if len(spike.Indices)%3 != 0 || len(flag.Indices)%3 != 0 {
		t.Error("meshes must be triangle lists")
	}
}
