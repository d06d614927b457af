//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Health
// ---------------------------------------------------------------------------

func TestE2E_HealthEndpoints(t *testing.T) {
	ts := setupTestServer(t)

	for _, path := range []string{"/live", "/ready", "/health"} {
		t.Run(path, func(t *testing.T) {
			status, body := ts.getJSON(t, path)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, "ok", body["status"])
		})
	}
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

func TestE2E_ListStories_OrderedByDifficulty(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.getJSON(t, "/api/stories?limit=100")
	require.Equal(t, http.StatusOK, status)

	stories, ok := body["stories"].([]any)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(stories), 6)

	rank := map[string]int{"beginner": 1, "intermediate": 2, "advanced": 3, "poetry": 4}
	prev := 0
	for _, s := range stories {
		d := s.(map[string]any)["difficulty"].(string)
		assert.GreaterOrEqual(t, rank[d], prev, "stories must be ordered by difficulty")
		prev = rank[d]
	}
}

func TestE2E_ListStories_FilterAndSearch(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.getJSON(t, "/api/stories?difficulty=poetry&q=INTERNET")
	require.Equal(t, http.StatusOK, status)

	stories := body["stories"].([]any)
	require.Len(t, stories, 1)
	assert.Equal(t, "internet-poem", stories[0].(map[string]any)["slug"])
	assert.EqualValues(t, 1, body["total"])
}

// ---------------------------------------------------------------------------
// Reading flow
// ---------------------------------------------------------------------------

func TestE2E_ReadStoryToCompletion(t *testing.T) {
	ts := setupTestServer(t)
	id := ts.storyIDBySlug(t, "hare-tortoise")

	status, doc := ts.getJSON(t, "/api/stories/"+id+"/document")
	require.Equal(t, http.StatusOK, status)

	words := doc["words"].([]any)
	require.Len(t, words, 113)
	first := words[0].(map[string]any)
	assert.Equal(t, "Once", first["text"])
	assert.Equal(t, "once", first["clean"])

	// Step forward with autoplay on.
	status, step := ts.postJSON(t, "/api/stories/"+id+"/navigate", map[string]any{
		"position": map[string]any{"word": 0, "sentence": 0},
		"action":   "next",
		"autoPlay": true,
		"rate":     0.1,
	})
	require.Equal(t, http.StatusOK, status)
	utter := step["utterance"].(map[string]any)
	assert.Equal(t, "there", utter["text"])
	assert.InDelta(t, 0.5, utter["rate"], 1e-9)

	// Skip to the second sentence.
	status, step = ts.postJSON(t, "/api/stories/"+id+"/navigate", map[string]any{
		"position": map[string]any{"word": 1, "sentence": 0},
		"action":   "next_sentence",
	})
	require.Equal(t, http.StatusOK, status)
	pos := step["position"].(map[string]any)
	assert.EqualValues(t, 1, pos["sentence"])
	assert.EqualValues(t, 11, pos["word"])

	// Jump to the end.
	status, step = ts.postJSON(t, "/api/stories/"+id+"/navigate", map[string]any{
		"position": map[string]any{"word": 11, "sentence": 1},
		"action":   "jump",
		"target":   112,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, step["completed"])
	assert.InDelta(t, 100.0, step["progress"], 1e-9)

	// Read the last sentence aloud.
	status, u := ts.postJSON(t, "/api/stories/"+id+"/utterance", map[string]any{
		"position": map[string]any{"word": 112},
		"target":   "sentence",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "He had won the race", u["text"])
}

func TestE2E_UnknownStory(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.getJSON(t, "/api/stories/00000000-0000-4000-8000-00000000dead")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not found", body["error"])
}

// ---------------------------------------------------------------------------
// Ad-hoc text
// ---------------------------------------------------------------------------

func TestE2E_SyllabifyAndSegment(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.postJSON(t, "/api/syllabify", map[string]any{"words": []string{"Tortoise,", "running."}})
	require.Equal(t, http.StatusOK, status)
	words := body["words"].([]any)
	require.Len(t, words, 2)
	assert.Equal(t, "tor-toise", words[0].(map[string]any)["syllables"])
	assert.Equal(t, "run-ning", words[1].(map[string]any)["syllables"])

	status, body = ts.postJSON(t, "/api/segment", map[string]any{"text": "The hare ran. The tortoise won!"})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["words"], 6)
	assert.Len(t, body["sentences"], 2)
	assert.Equal(t, true, body["aligned"])
}
