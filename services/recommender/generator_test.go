package recommender

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibemix/blueprint"
	"vibemix/services/groq"
)

// scriptedBackend returns its responses in order; a response holding an error
// fails that call.
type scriptedBackend struct {
	responses []scriptedResponse
	requests  []*groq.ChatRequest
}

type scriptedResponse struct {
	content string
	err     error
}

func (b *scriptedBackend) ChatCompletion(_ context.Context, req *groq.ChatRequest) (string, error) {
	b.requests = append(b.requests, req)
	if len(b.responses) == 0 {
		return "", errors.New("no scripted response left")
	}
	next := b.responses[0]
	b.responses = b.responses[1:]
	return next.content, next.err
}

const validModelOutput = `{"playlistName": "Electric Rock Power Hour", "songs": [
	{"title": "Thunderstruck", "artist": "AC/DC"},
	{"title": "Enter Sandman", "artist": "Metallica"},
	{"title": "Thunderstruck", "artist": "Some Cover Band"},
	{"title": "Back in Black", "artist": "AC/DC"}
]}`

func TestGeneratorUsesPrimaryStrategy(t *testing.T) {
	backend := &scriptedBackend{responses: []scriptedResponse{{content: validModelOutput}}}
	generator := NewGenerator(backend)

	recs := generator.Generate(context.Background(), workoutRockCriteria())

	require.Len(t, backend.requests, 1)
	assert.Equal(t, "Electric Rock Power Hour", recs.PlaylistName)
	assert.Empty(t, recs.Error)
	// the duplicate title is dropped by post-processing
	assert.Len(t, recs.Songs, 3)
	assert.InDelta(t, 0.9, backend.requests[0].Temperature, 0.001)
	assert.Equal(t, 3000, backend.requests[0].MaxTokens)
}

func TestGeneratorFallsBackToSimplifiedPrompt(t *testing.T) {
	backend := &scriptedBackend{responses: []scriptedResponse{
		{content: "sorry, I cannot produce JSON today"},
		{content: `{"songs": [{"title": "Thunderstruck", "artist": "AC/DC"}]}`},
	}}
	generator := NewGenerator(backend)

	recs := generator.Generate(context.Background(), workoutRockCriteria())

	require.Len(t, backend.requests, 2)
	// relaxed parsing names the playlist when the model does not
	assert.Equal(t, "Generated Playlist", recs.PlaylistName)
	assert.Len(t, recs.Songs, 1)
	assert.InDelta(t, 0.7, backend.requests[1].Temperature, 0.001)
	assert.Equal(t, 1500, backend.requests[1].MaxTokens)
}

func TestGeneratorFallsBackToCorpus(t *testing.T) {
	backend := &scriptedBackend{responses: []scriptedResponse{
		{err: errors.New("backend down")},
		{err: errors.New("backend down")},
	}}
	generator := NewGenerator(backend)

	recs := generator.Generate(context.Background(), workoutRockCriteria())

	require.Len(t, backend.requests, 2)
	assert.Empty(t, recs.Error)
	assert.Len(t, recs.Songs, 10)
}

func TestGeneratorWithoutBackendUsesCorpusOnly(t *testing.T) {
	generator := NewGenerator(nil)

	recs := generator.Generate(context.Background(), workoutRockCriteria())
	assert.Empty(t, recs.Error)
	assert.Len(t, recs.Songs, 10)
}

func TestGeneratorAcceptsFencedModelOutput(t *testing.T) {
	backend := &scriptedBackend{responses: []scriptedResponse{
		{content: "Here you go:\n```json\n" + validModelOutput + "\n```"},
	}}
	generator := NewGenerator(backend)

	recs := generator.Generate(context.Background(), workoutRockCriteria())
	assert.Equal(t, "Electric Rock Power Hour", recs.PlaylistName)
	assert.NotEmpty(t, recs.Songs)
}

func TestParseRecommendations(t *testing.T) {
	t.Run("strict mode rejects a missing playlist name", func(t *testing.T) {
		_, err := ParseRecommendations(`{"songs": [{"title": "A", "artist": "B"}]}`, true)
		assert.ErrorIs(t, err, blueprint.ErrGenerationFormat)
	})

	t.Run("both modes reject empty songs", func(t *testing.T) {
		_, err := ParseRecommendations(`{"playlistName": "X", "songs": []}`, false)
		assert.ErrorIs(t, err, blueprint.ErrGenerationFormat)
	})

	t.Run("rejects non json output", func(t *testing.T) {
		_, err := ParseRecommendations("I'd be happy to help!", true)
		assert.ErrorIs(t, err, blueprint.ErrGenerationFormat)
	})
}

func TestExtractJSON(t *testing.T) {
	payload := `{"playlistName": "X"}`
	assert.Equal(t, payload, ExtractJSON("```json\n"+payload+"\n```"))
	assert.Equal(t, payload, ExtractJSON("Sure! Here it is: "+payload+" Enjoy!"))
	assert.Equal(t, payload, ExtractJSON(payload))
}
