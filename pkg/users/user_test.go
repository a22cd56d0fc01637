package users

import (
	"context"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestUser_PasswordStaysOutOfCache(t *testing.T) {
	encoded, err := msgpack.Marshal(&User{Name: "Nimal Perera", Password: "$2a$10$hash"})
	if err != nil {
		t.Fatal(err)
	}

	decoded := map[string]interface{}{}
	err = msgpack.Unmarshal(encoded, &decoded)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := decoded["Password"]; ok {
		t.Errorf("cached user carries the password: %v", decoded)
	}
	if decoded["Name"] != "Nimal Perera" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestMockUserRepository_FindByID_OmitsPassword(t *testing.T) {
	ctx := context.Background()
	repository := &MockUserRepository{}
	user := &User{Name: "Nimal Perera", Password: "$2a$10$hash"}
	if err := repository.Add(ctx, user); err != nil {
		t.Fatal(err)
	}

	found, err := repository.FindByID(ctx, user.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if found.Password != "" {
		t.Errorf("password = %q, want it left out", found.Password)
	}
	if repository.Users[0].Password == "" {
		t.Error("stored password must survive")
	}
}
