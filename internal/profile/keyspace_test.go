package profile

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Rowan", "rowan"},
		{"  Rowan  ", "rowan"},
		{"ALICE", "alice"},
		{"alice", "alice"},
		{"", DefaultIdentifier},
		{"   ", DefaultIdentifier},
		{"Mentor", MentorIdentifier},
	}

	for _, c := range cases {
		if got := Normalize(c.raw); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestStorageKeyForInjective(t *testing.T) {
	ids := []string{"rowan", "morgan", "sam", DefaultIdentifier, MentorIdentifier}
	seen := make(map[string]string)
	for _, id := range ids {
		key := StorageKeyFor(id)
		if prev, ok := seen[key]; ok {
			t.Errorf("Identifiers %q and %q collide on key %q", prev, id, key)
		}
		seen[key] = id
	}
}

func TestStorageKeyAvoidsPointerKey(t *testing.T) {
	// A student literally named "current-profile" must not clobber the
	// pointer entry.
	if StorageKeyFor(Normalize("current-profile")) == currentProfileKey {
		t.Error("Profile data key collides with the current-profile pointer key")
	}
}
