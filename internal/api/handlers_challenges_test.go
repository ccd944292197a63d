package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/mindmatehq/mindmate/internal/db"
	"github.com/mindmatehq/mindmate/internal/models"
)

func TestChallengeCreateListJoin(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	creatorToken, creator := registerTestUser(t, app, "creator@example.com", "StrongPass1", "Creator")
	joinerToken, joiner := registerTestUser(t, app, "joiner@example.com", "StrongPass1", "Joiner")

	created := doJSON(t, app, http.MethodPost, "/api/challenges", creatorToken, map[string]any{
		"name":          "30 days of running",
		"description":   "Run every day for a month",
		"category":      "exercise",
		"duration_days": 30,
	})
	defer created.Body.Close()
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", created.StatusCode)
	}
	var challenge models.Challenge
	decodeBody(t, created.Body, &challenge)
	if challenge.CreatedBy != creator.ID {
		t.Fatalf("expected creator %s, got %s", creator.ID, challenge.CreatedBy)
	}
	if !challenge.IsActive {
		t.Fatal("expected new challenge active")
	}
	if len(challenge.Participants) != 0 {
		t.Fatalf("expected empty participant set, got %v", challenge.Participants)
	}

	// Listing is public.
	listed := doJSON(t, app, http.MethodGet, "/api/challenges", "", nil)
	defer listed.Body.Close()
	if listed.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 without auth, got %d", listed.StatusCode)
	}
	var challenges []models.Challenge
	decodeBody(t, listed.Body, &challenges)
	if len(challenges) != 1 || challenges[0].ID != challenge.ID {
		t.Fatalf("expected the created challenge listed, got %+v", challenges)
	}

	// Joining twice leaves the participant set at one.
	for i := 0; i < 2; i++ {
		joined := doJSON(t, app, http.MethodPost, "/api/challenges/"+challenge.ID+"/join", joinerToken, nil)
		joined.Body.Close()
		if joined.StatusCode != http.StatusOK {
			t.Fatalf("join attempt %d: expected status 200, got %d", i, joined.StatusCode)
		}
	}

	participantCount, err := db.NewChallengeRepository(database).CountParticipants(challenge.ID)
	if err != nil {
		t.Fatalf("count participants: %v", err)
	}
	if participantCount != 1 {
		t.Fatalf("expected 1 participant after duplicate join, got %d", participantCount)
	}

	relisted := doJSON(t, app, http.MethodGet, "/api/challenges", "", nil)
	defer relisted.Body.Close()
	decodeBody(t, relisted.Body, &challenges)
	if len(challenges[0].Participants) != 1 || challenges[0].Participants[0] != joiner.ID {
		t.Fatalf("expected joiner in participant list, got %v", challenges[0].Participants)
	}
}

func TestJoinUnknownChallengeIsSilentNoOp(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "ghostjoin@example.com", "StrongPass1", "Ghost")

	response := doJSON(t, app, http.MethodPost, "/api/challenges/"+uuid.NewString()+"/join", token, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for missing challenge, got %d", response.StatusCode)
	}

	listed := doJSON(t, app, http.MethodGet, "/api/challenges", "", nil)
	defer listed.Body.Close()
	var challenges []models.Challenge
	decodeBody(t, listed.Body, &challenges)
	if len(challenges) != 0 {
		t.Fatalf("expected no challenges listed, got %+v", challenges)
	}
}

func TestCreateChallengeValidatesInput(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "invalidchallenge@example.com", "StrongPass1", "Invalid")

	response := doJSON(t, app, http.MethodPost, "/api/challenges", token, map[string]any{
		"name":          "No duration",
		"description":   "Missing fields",
		"category":      "exercise",
		"duration_days": 0,
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}
