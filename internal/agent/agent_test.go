package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// genai links opencensus, whose view worker starts in init and never exits.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
	block   bool
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func TestLookup(t *testing.T) {
	a, err := Lookup("  Trends ")
	require.NoError(t, err)
	assert.Equal(t, Trends, a.Name)

	_, err = Lookup("astrologer")
	assert.ErrorIs(t, err, ErrUnknownAgent)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"career", "skills", "trends", "interview"}, Names())
	assert.Len(t, Agents(), 4)
}

func TestBuildPrompt(t *testing.T) {
	a, err := Lookup("career")
	require.NoError(t, err)

	t.Run("with profile", func(t *testing.T) {
		p := Profile{Name: "Asha", Branch: "CSE", Year: 3, Skills: []string{"Go", "SQL"}}
		got := BuildPrompt(a, p, "  what next?  ")
		assert.True(t, strings.HasPrefix(got, a.Prompt))
		assert.Contains(t, got, "Student Profile: Asha, CSE, Year 3, Skills: Go, SQL")
		assert.True(t, strings.HasSuffix(got, "Student Question: what next?"))
	})

	t.Run("without profile", func(t *testing.T) {
		got := BuildPrompt(a, Profile{}, "hi")
		assert.NotContains(t, got, "Student Profile")
		assert.Equal(t, a.Prompt+"\n\n\n\nStudent Question: hi", got)
	})
}

func TestServiceAsk(t *testing.T) {
	gen := &fakeGenerator{reply: "# Paths\n* Backend"}
	svc := NewService(gen, Profile{Name: "Asha"}, time.Second, nil)

	got, err := svc.Ask(context.Background(), "skills", "backend dev")
	require.NoError(t, err)
	assert.Equal(t, "# Paths\n* Backend", got)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Skills Gap Analyzer")
	assert.Contains(t, gen.prompts[0], "Student Question: backend dev")
}

func TestServiceAskErrors(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota")}
	svc := NewService(gen, Profile{}, 0, nil)

	_, err := svc.Ask(context.Background(), "nobody", "q")
	assert.ErrorIs(t, err, ErrUnknownAgent)

	_, err = svc.Ask(context.Background(), "career", "   ")
	assert.Error(t, err)

	_, err = svc.Ask(context.Background(), "career", "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Career Mentor")
	assert.Contains(t, err.Error(), "quota")
}

func TestServiceAskTimeout(t *testing.T) {
	gen := &fakeGenerator{block: true}
	svc := NewService(gen, Profile{}, 10*time.Millisecond, nil)

	_, err := svc.Ask(context.Background(), "career", "q")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMotivate(t *testing.T) {
	t.Run("model reply", func(t *testing.T) {
		gen := &fakeGenerator{reply: "  Keep going! 🌟 \n"}
		svc := NewService(gen, Profile{Name: "Asha"}, time.Second, nil)
		assert.Equal(t, "Keep going! 🌟", svc.Motivate(context.Background(), 40))
		assert.Contains(t, gen.prompts[0], "named Asha who has completed 40%")
	})

	t.Run("fallback on error", func(t *testing.T) {
		svc := NewService(&fakeGenerator{err: errors.New("down")}, Profile{Name: "Asha"}, time.Second, nil)
		assert.Equal(t,
			"🚀 Great progress, Asha! You're 75% there - keep building your future!",
			svc.Motivate(context.Background(), 75))
	})

	t.Run("fallback on empty reply", func(t *testing.T) {
		svc := NewService(&fakeGenerator{}, Profile{}, time.Second, nil)
		assert.Equal(t, FallbackMotivation("there", 10), svc.Motivate(context.Background(), 10))
	})
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "", nil)
	assert.Error(t, err)
}
