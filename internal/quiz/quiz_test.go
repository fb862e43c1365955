package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestSeedQuestionsAreValid(t *testing.T) {
	seed := Seed()
	require.Len(t, seed, 20)
	seen := map[string]bool{}
	for _, q := range seed {
		require.NoError(t, q.Validate())
		require.GreaterOrEqual(t, q.Correct, 0)
		require.Less(t, q.Correct, len(q.Options))
		require.False(t, seen[q.Text], "duplicate seed text %q", q.Text)
		seen[q.Text] = true
	}
	require.Equal(t, "Which country has the most population?", seed[0].Text)
	require.Equal(t, "What is the boiling point of water?", seed[19].Text)
}

func TestValidateRejectsBrokenQuestions(t *testing.T) {
	cases := map[string]Question{
		"blank text":      {Text: " ", Options: []string{"a", "b"}, Correct: 0},
		"one option":      {Text: "q", Options: []string{"a"}, Correct: 0},
		"four options":    {Text: "q", Options: []string{"a", "b", "c", "d"}, Correct: 0},
		"blank option":    {Text: "q", Options: []string{"a", ""}, Correct: 0},
		"negative index":  {Text: "q", Options: []string{"a", "b"}, Correct: -1},
		"index too large": {Text: "q", Options: []string{"a", "b", "c"}, Correct: 3},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, q.Validate(), ErrInvalidQuestion)
		})
	}
	require.NoError(t, NewQuestion("q", []string{"a", "b"}, 1).Validate())
}

func TestStoreAppendFindReplace(t *testing.T) {
	s := NewStore(Seed())
	q := NewQuestion("What colour is the sky?", []string{"Blue", "Green", "Red"}, 0)
	s.Append(q)
	require.Equal(t, 21, s.Len())

	idx, ok := s.FindIndexByText(q.Text)
	require.True(t, ok)
	require.Equal(t, 20, idx)
	require.True(t, s.At(idx).Equal(q))

	_, ok = s.FindIndexByText("what colour is the sky?")
	require.False(t, ok, "lookup is case-sensitive")

	updated := NewQuestion(q.Text, []string{"Grey", "Blue", "Red"}, 1)
	s.ReplaceAt(idx, updated)
	require.True(t, s.At(idx).Equal(updated))
	require.Equal(t, 21, s.Len())

	require.Panics(t, func() { s.ReplaceAt(21, updated) })
	require.Panics(t, func() { s.ReplaceAt(-1, updated) })
}

func TestStoreReplaceByTextLeavesSingleEntry(t *testing.T) {
	s := NewStore(nil)
	s.Append(NewQuestion("dup", []string{"a", "b"}, 0))
	s.Append(NewQuestion("other", []string{"a", "b"}, 0))
	s.Append(NewQuestion("dup", []string{"c", "d"}, 1))

	replacement := NewQuestion("dup", []string{"x", "y", "z"}, 2)
	require.Equal(t, 2, s.ReplaceByText(replacement))
	require.Equal(t, 2, s.Len())

	count := 0
	for _, q := range s.All() {
		if q.Text == "dup" {
			count++
			require.True(t, q.Equal(replacement))
		}
	}
	require.Equal(t, 1, count)
	require.Equal(t, "other", s.At(0).Text)
}

func TestStoreCopiesOptions(t *testing.T) {
	opts := []string{"a", "b", "c"}
	s := NewStore(nil)
	s.Append(Question{Text: "q", Options: opts, Correct: 0})
	opts[0] = "mutated"
	require.Equal(t, "a", s.At(0).Options[0])

	all := s.All()
	all[0] = Question{Text: "changed"}
	require.Equal(t, "q", s.At(0).Text)

	got := s.At(0)
	got.Options[0] = "edited"
	require.Equal(t, "a", s.At(0).Options[0])

	all = s.All()
	all[0].Options[1] = "edited"
	require.Equal(t, "b", s.At(0).Options[1])
}

func TestSessionCurrentIsACopy(t *testing.T) {
	s := NewStore(Seed())
	sess, err := StartSession(s, testRand(3))
	require.NoError(t, err)

	q, _ := sess.Current()
	want := q.Options[0]
	q.Options[0] = "edited"
	again, _ := sess.Current()
	require.Equal(t, want, again.Options[0])

	drawn := sess.Questions()
	drawn[0].Options[0] = "edited"
	again, _ = sess.Current()
	require.Equal(t, want, again.Options[0])

	i, ok := s.FindIndexByText(q.Text)
	require.True(t, ok)
	require.Equal(t, want, s.At(i).Options[0])
}

func TestSampleDrawsDistinctQuestions(t *testing.T) {
	s := NewStore(Seed())
	for seed := uint64(0); seed < 50; seed++ {
		qs, err := s.Sample(testRand(seed), SessionSize)
		require.NoError(t, err)
		require.Len(t, qs, SessionSize)
		seen := map[string]bool{}
		for _, q := range qs {
			require.False(t, seen[q.Text])
			seen[q.Text] = true
			_, ok := s.FindIndexByText(q.Text)
			require.True(t, ok)
		}
	}
}

func TestStartSessionNeedsEnoughQuestions(t *testing.T) {
	s := NewStore(Seed()[:3])
	_, err := StartSession(s, testRand(1))
	require.True(t, errors.Is(err, ErrNotEnoughQuestions))

	s.Append(Seed()[3])
	sess, err := StartSession(s, testRand(1))
	require.NoError(t, err)
	require.Equal(t, SessionSize, sess.Total())
}

func TestSessionAllCorrectScoresFour(t *testing.T) {
	sess, err := StartSession(NewStore(Seed()), testRand(7))
	require.NoError(t, err)
	require.Equal(t, 0, sess.Index())
	require.Equal(t, 0, sess.Score())

	for {
		q, _ := sess.Current()
		require.True(t, sess.SubmitAnswer(q.Correct))
		if !sess.Advance() {
			break
		}
	}
	require.True(t, sess.Complete())
	require.Equal(t, 4, sess.Score())
	for _, r := range sess.Results() {
		require.True(t, r.Correct)
		require.Equal(t, r.CorrectText, r.ChosenText)
	}
}

func TestSessionUnansweredRecordsSentinel(t *testing.T) {
	sess, err := StartSession(NewStore(Seed()), testRand(3))
	require.NoError(t, err)

	q, _ := sess.Current()
	require.True(t, sess.SubmitAnswer(q.Correct))
	require.True(t, sess.Advance())

	require.True(t, sess.SubmitAnswer(Unanswered))
	require.Equal(t, []int{q.Correct, Unanswered}, sess.Answers())
	require.Equal(t, 1, sess.Score())
	require.True(t, sess.Advance())
	require.Equal(t, 2, sess.Index())

	results := sess.Results()
	require.Equal(t, NotAnswered, results[1].ChosenText)
	require.False(t, results[1].Correct)
	require.Equal(t, Unanswered, results[2].Chosen, "unreached questions count as unanswered")
}

func TestSessionOutOfRangeAnswerIsUnanswered(t *testing.T) {
	sess, err := StartSession(NewStore(Seed()), testRand(11))
	require.NoError(t, err)
	require.True(t, sess.SubmitAnswer(9))
	require.Equal(t, []int{Unanswered}, sess.Answers())
	require.False(t, sess.SubmitAnswer(0), "second submit for the same question is refused")
}

func TestSessionScoreInvariant(t *testing.T) {
	for seed := uint64(0); seed < 30; seed++ {
		rng := testRand(seed)
		sess, err := StartSession(NewStore(Seed()), rng)
		require.NoError(t, err)
		for {
			sess.SubmitAnswer(rng.IntN(4) - 1)
			if !sess.Advance() {
				break
			}
		}
		want := 0
		answers := sess.Answers()
		for i, q := range sess.Questions() {
			if answers[i] == q.Correct {
				want++
			}
		}
		require.Equal(t, want, sess.Score())
	}
}

func TestDraftReadyAndQuestion(t *testing.T) {
	d := Draft{Text: "Q?", Options: [3]string{"a", "b", ""}}
	require.False(t, d.Ready())
	_, err := d.Question()
	require.ErrorIs(t, err, ErrIncompleteDraft)

	d.Options[2] = "c"
	d.SetCorrect(5)
	require.Equal(t, 2, d.Correct)
	d.SetCorrect(-2)
	require.Equal(t, 0, d.Correct)
	d.SetCorrect(1)
	require.True(t, d.Ready())

	q, err := d.Question()
	require.NoError(t, err)
	require.Equal(t, "Q?", q.Text)
	require.Equal(t, []string{"a", "b", "c"}, q.Options)
	require.Equal(t, 1, q.Correct)
}

func TestClosestFindsNearDuplicates(t *testing.T) {
	s := NewStore(Seed())
	got, ok := Closest(s, "What is the capital of Frence?")
	require.True(t, ok)
	require.Equal(t, "What is the capital of France?", got)

	_, ok = Closest(s, "What is the capital of France?")
	require.False(t, ok, "exact matches are handled by replace confirmation")

	_, ok = Closest(s, "Completely unrelated prompt")
	require.False(t, ok)
}

func TestOptionLabel(t *testing.T) {
	require.Equal(t, "a", OptionLabel(0))
	require.Equal(t, "c", OptionLabel(2))
	require.Equal(t, "", OptionLabel(-1))
}
