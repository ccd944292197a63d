package api

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mindmatehq/mindmate/internal/db"
	"github.com/mindmatehq/mindmate/internal/models"
)

func TestListUsersExcludesSelfAndSecrets(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	tokenA, userA := registerTestUser(t, app, "alice@example.com", "StrongPass1", "Alice")
	_, userB := registerTestUser(t, app, "bob@example.com", "StrongPass1", "Bob")

	response := doJSON(t, app, http.MethodGet, "/api/social/users", tokenA, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if strings.Contains(string(raw), "password") {
		t.Fatal("user listing must not leak password material")
	}
	if strings.Contains(string(raw), userA.ID) {
		t.Fatal("user listing must exclude the caller")
	}
	if !strings.Contains(string(raw), userB.ID) {
		t.Fatal("user listing must include other users")
	}
}

func TestAddFriendIsSymmetricAndIdempotent(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	tokenA, userA := registerTestUser(t, app, "ann@example.com", "StrongPass1", "Ann")
	tokenB, userB := registerTestUser(t, app, "ben@example.com", "StrongPass1", "Ben")

	for i := 0; i < 2; i++ {
		response := doJSON(t, app, http.MethodPost, "/api/social/friends/"+userB.ID, tokenA, nil)
		defer response.Body.Close()
		if response.StatusCode != http.StatusOK {
			t.Fatalf("add friend attempt %d: expected status 200, got %d", i, response.StatusCode)
		}
	}

	// Re-adding must not grow the friend set.
	edgeCount, err := db.NewUserRepository(database).CountFriendEdges(userA.ID)
	if err != nil {
		t.Fatalf("count friend edges: %v", err)
	}
	if edgeCount != 1 {
		t.Fatalf("expected 1 friend edge after duplicate add, got %d", edgeCount)
	}

	// Both sides resolve the friendship.
	friendsOfA := doJSON(t, app, http.MethodGet, "/api/social/friends", tokenA, nil)
	defer friendsOfA.Body.Close()
	var listA []models.User
	decodeBody(t, friendsOfA.Body, &listA)
	if len(listA) != 1 || listA[0].ID != userB.ID {
		t.Fatalf("expected Ben in Ann's friends, got %+v", listA)
	}

	friendsOfB := doJSON(t, app, http.MethodGet, "/api/social/friends", tokenB, nil)
	defer friendsOfB.Body.Close()
	var listB []models.User
	decodeBody(t, friendsOfB.Body, &listB)
	if len(listB) != 1 || listB[0].ID != userA.ID {
		t.Fatalf("expected Ann in Ben's friends, got %+v", listB)
	}
}

func TestAddFriendUnknownTargetIsSilentNoOp(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "lonely@example.com", "StrongPass1", "Lonely")

	response := doJSON(t, app, http.MethodPost, "/api/social/friends/"+uuid.NewString(), token, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for missing target, got %d", response.StatusCode)
	}

	friends := doJSON(t, app, http.MethodGet, "/api/social/friends", token, nil)
	defer friends.Body.Close()
	var list []models.User
	decodeBody(t, friends.Body, &list)
	if len(list) != 0 {
		t.Fatalf("expected no resolvable friends, got %+v", list)
	}
}
