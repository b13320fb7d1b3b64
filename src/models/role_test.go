package models

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"student", "recruiter", "mentor"} {
		if _, ok := ParseRole(valid); !ok {
			t.Fatalf("ParseRole(%q) should succeed", valid)
		}
	}
	for _, invalid := range []string{"", "admin", "Student", "STUDENT"} {
		if _, ok := ParseRole(invalid); ok {
			t.Fatalf("ParseRole(%q) should fail", invalid)
		}
	}
}

func TestRoleCollection(t *testing.T) {
	cases := map[Role]string{
		RoleStudent:   "students",
		RoleRecruiter: "recruiters",
		RoleMentor:    "mentors",
	}
	for role, want := range cases {
		if got := role.Collection(); got != want {
			t.Errorf("%s.Collection() = %q, want %q", role, got, want)
		}
	}
}

func TestRoleCounterpart(t *testing.T) {
	if cp, ok := RoleStudent.Counterpart(); !ok || cp != RoleRecruiter {
		t.Errorf("student counterpart = %q, %v", cp, ok)
	}
	if cp, ok := RoleRecruiter.Counterpart(); !ok || cp != RoleStudent {
		t.Errorf("recruiter counterpart = %q, %v", cp, ok)
	}
	if _, ok := RoleMentor.Counterpart(); ok {
		t.Error("mentor should have no counterpart")
	}
}
