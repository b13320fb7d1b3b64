package lib

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/techlearn/techlearn-backend/src/models"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	userID := primitive.NewObjectID()
	token, err := GenerateJWT(userID, "jane@example.com", models.RoleRecruiter)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	principal, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if principal.ID != userID {
		t.Errorf("ID = %s, want %s", principal.ID.Hex(), userID.Hex())
	}
	if principal.Email != "jane@example.com" {
		t.Errorf("Email = %q", principal.Email)
	}
	if principal.Role != models.RoleRecruiter {
		t.Errorf("Role = %q", principal.Role)
	}
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := VerifyJWT(token); err == nil {
			t.Errorf("VerifyJWT(%q) should fail", token)
		}
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("secret-one")
	token, err := GenerateJWT(primitive.NewObjectID(), "x@example.com", models.RoleStudent)
	if err != nil {
		t.Fatal(err)
	}

	SetJWTSecret("secret-two")
	if _, err := VerifyJWT(token); err == nil {
		t.Fatal("token signed with a different secret should fail")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("password must not be stored in plaintext")
	}
	if !CheckPassword(hash, "hunter22") {
		t.Fatal("correct password should verify")
	}
	if CheckPassword(hash, "hunter23") {
		t.Fatal("wrong password should not verify")
	}
}
