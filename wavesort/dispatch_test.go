package wavesort

import "testing"

// TestLevelString covers the Level names.
func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelPortable, "portable"},
		{LevelUnchecked, "unchecked"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

// TestCurrentNameMatchesLevel pins the name reported for the selected
// kernel to the level's own name.
func TestCurrentNameMatchesLevel(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel().String())
	}
}

// TestNoAccelEnv checks the environment override parsing rules.
func TestNoAccelEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"0", false},
		{"true", true},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("WSORT_NO_ACCEL", tt.val)
		if got := NoAccelEnv(); got != tt.want {
			t.Errorf("NoAccelEnv with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}
