package memory

import (
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"

	"github.com/ZaguanLabs/goweft"
)

func TestRedisStore_Add(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(client, "")

	mock.ExpectHSet("goweft:tm:fr", "fr_FR\x1fHello", "Bonjour").SetVal(1)

	err := store.Add(goweft.MemoryUnit{
		SourceText: "Hello",
		TargetLang: "fr_FR",
		TargetText: "Bonjour",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisStore_AddError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(client, "")

	mock.ExpectHSet("goweft:tm:fr", "fr_FR\x1fHello", "Bonjour").SetErr(errors.New("down"))

	err := store.Add(goweft.MemoryUnit{
		SourceText: "Hello",
		TargetLang: "fr_FR",
		TargetText: "Bonjour",
	})
	var memErr *goweft.MemoryError
	if !errors.As(err, &memErr) {
		t.Fatalf("err = %v, want *MemoryError", err)
	}
}

func TestRedisStore_Units(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(client, "")

	mock.ExpectHGetAll("goweft:tm:fr").SetVal(map[string]string{
		"fr_FR\x1fHello": "Bonjour",
		"fr_CA\x1fHi":    "Allo",
		"stray-field":    "ignored",
	})

	units, err := store.Units("fr_FR")
	if err != nil {
		t.Fatalf("Units: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("units = %d, want 2 (stray field skipped)", len(units))
	}
	byLang := make(map[string]goweft.MemoryUnit)
	for _, u := range units {
		byLang[u.TargetLang] = u
	}
	if u := byLang["fr_FR"]; u.SourceText != "Hello" || u.TargetText != "Bonjour" {
		t.Errorf("fr_FR unit = %+v", u)
	}
	if u := byLang["fr_CA"]; u.SourceText != "Hi" || u.TargetText != "Allo" {
		t.Errorf("fr_CA unit = %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisStore_UnitsSharesBaseKey(t *testing.T) {
	// "fr" and "fr_FR" read the same hash.
	client, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(client, "")

	mock.ExpectHGetAll("goweft:tm:fr").SetVal(map[string]string{
		"fr_FR\x1fHello": "Bonjour",
	})

	units, err := store.Units("fr")
	if err != nil {
		t.Fatalf("Units: %v", err)
	}
	if len(units) != 1 {
		t.Errorf("units = %d, want 1", len(units))
	}
}

func TestRedisStore_All(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(client, "custom:")

	mock.ExpectKeys("custom:*").SetVal([]string{"custom:fr", "custom:de"})
	mock.ExpectHGetAll("custom:fr").SetVal(map[string]string{
		"fr_FR\x1fHello": "Bonjour",
	})
	mock.ExpectHGetAll("custom:de").SetVal(map[string]string{
		"de_DE\x1fHello": "Hallo",
	})

	units, err := store.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(units) != 2 {
		t.Errorf("units = %d, want 2", len(units))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
