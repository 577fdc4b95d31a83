package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/toeiz/internal/llm"
	"github.com/abhisek/toeiz/internal/questiongen"
	"github.com/abhisek/toeiz/internal/scoring"
	"github.com/abhisek/toeiz/internal/session"
	"github.com/abhisek/toeiz/internal/streak"
)

// questionResult is one graded question on a result page.
type questionResult struct {
	questiongen.GrammarItem
	Number      int
	Answer      string
	Correct     bool
	Favorite    bool
	CanFavorite bool
}

type passageResult struct {
	Passage   string
	Questions []questionResult
}

func (s *Server) grammarTest(c *gin.Context) {
	sess := session.Get(c)
	res, next, err := s.generator.GenerateGrammar(c.Request.Context(), sess.Tests)
	if err != nil {
		s.generationFailed(c, questiongen.KindGrammar, err)
		return
	}
	sess.Tests = next
	s.flashGeneration(sess, res.Cached, res.Warning)
	s.render(c, "grammar_test", gin.H{"Questions": res.Items})
}

func (s *Server) readingTest(c *gin.Context) {
	sess := session.Get(c)
	res, next, err := s.generator.GenerateReading(c.Request.Context(), sess.Tests)
	if err != nil {
		s.generationFailed(c, questiongen.KindReading, err)
		return
	}
	sess.Tests = next
	s.flashGeneration(sess, res.Cached, res.Warning)
	s.render(c, "reading_test", gin.H{"Passages": res.Items})
}

func (s *Server) flashGeneration(sess *session.Session, cached bool, warning string) {
	switch {
	case warning != "":
		sess.AddFlash(session.FlashWarning, warning)
	case !cached:
		sess.AddFlash(session.FlashSuccess, "Successfully generated questions")
	}
}

func (s *Server) generationFailed(c *gin.Context, kind questiongen.Kind, err error) {
	s.logger.ErrorContext(c.Request.Context(), "generate test", "kind", kind, "error", err)
	s.redirect(c, "/", session.FlashDanger, "Error generating questions: %s", generationMessage(err))
}

// generationMessage turns a generation failure into text for the user.
func generationMessage(err error) string {
	var exhausted *questiongen.GenerationExhaustedError
	var parseErr *questiongen.ParseError
	switch {
	case llm.IsConfigurationError(err):
		return "the question service is not configured"
	case errors.Is(err, context.DeadlineExceeded):
		return "the question service took too long to answer"
	case llm.IsServiceError(err):
		return "the question service is unavailable, please try again later"
	case errors.As(err, &exhausted):
		return "no new questions could be generated, please try again"
	case errors.As(err, &parseErr):
		return "the question service returned an unreadable answer"
	default:
		return "unexpected error"
	}
}

func (s *Server) submitGrammar(c *gin.Context) {
	sess := session.Get(c)
	items := sess.Tests.Grammar.Items
	if len(items) == 0 {
		s.redirect(c, "/", session.FlashDanger, "Session expired, please try again")
		return
	}

	answers := make([]string, len(items))
	for i := range items {
		answers[i] = c.PostForm(fmt.Sprintf("answers[%d]", i))
	}

	score, err := scoring.Grammar(items, answers)
	if err != nil {
		s.incomplete(c, "/grammar_test", err)
		return
	}
	sess.Tests = sess.Tests.Complete(questiongen.KindGrammar)

	favorites := s.favoriteSet(c, sess)
	results := make([]questionResult, len(items))
	for i, it := range items {
		results[i] = questionResult{
			GrammarItem: it,
			Number:      i + 1,
			Answer:      answers[i],
			Correct:     answers[i] == it.CorrectAnswer,
			Favorite:    favorites[it.Question],
			CanFavorite: sess.LoggedIn(),
		}
	}

	s.recordTestTaken(c, sess)
	s.render(c, "grammar_result", gin.H{"Results": results, "Score": score})
}

func (s *Server) submitReading(c *gin.Context) {
	sess := session.Get(c)
	items := sess.Tests.Reading.Items
	if len(items) == 0 {
		s.redirect(c, "/", session.FlashDanger, "Session expired, please try again")
		return
	}

	answers := make([][]string, len(items))
	for i, it := range items {
		answers[i] = make([]string, len(it.Questions))
		for j := range it.Questions {
			answers[i][j] = c.PostForm(fmt.Sprintf("answers[%d][%d]", i, j))
		}
	}

	score, err := scoring.Reading(items, answers)
	if err != nil {
		s.incomplete(c, "/reading_test", err)
		return
	}
	sess.Tests = sess.Tests.Complete(questiongen.KindReading)

	favorites := s.favoriteSet(c, sess)
	results := make([]passageResult, len(items))
	for i, it := range items {
		results[i] = passageResult{Passage: it.Passage, Questions: make([]questionResult, len(it.Questions))}
		for j, q := range it.Questions {
			results[i].Questions[j] = questionResult{
				GrammarItem: q,
				Number:      j + 1,
				Answer:      answers[i][j],
				Correct:     answers[i][j] == q.CorrectAnswer,
				Favorite:    favorites[q.Question],
				CanFavorite: sess.LoggedIn(),
			}
		}
	}

	s.recordTestTaken(c, sess)
	s.render(c, "reading_result", gin.H{"Results": results, "Score": score})
}

func (s *Server) incomplete(c *gin.Context, back string, err error) {
	var incomplete *scoring.IncompleteSubmissionError
	if !errors.As(err, &incomplete) {
		s.logger.ErrorContext(c.Request.Context(), "score test", "error", err)
	}
	s.redirect(c, back, session.FlashDanger, "Please answer all questions")
}

// favoriteSet returns the questions the logged-in user has saved. Failures
// only cost the markers on the result page.
func (s *Server) favoriteSet(c *gin.Context, sess *session.Session) map[string]bool {
	if !sess.LoggedIn() {
		return nil
	}
	favs, err := s.favorites.Questions(c.Request.Context(), sess.UserID)
	if err != nil {
		s.logger.WarnContext(c.Request.Context(), "load favorites", "user", sess.UserID, "error", err)
		sess.AddFlash(session.FlashDanger, "Error retrieving favorites")
		return nil
	}
	return favs
}

// recordTestTaken extends the logged-in user's daily streak.
func (s *Server) recordTestTaken(c *gin.Context, sess *session.Session) {
	if !sess.LoggedIn() {
		return
	}
	ctx := c.Request.Context()
	user, err := s.users.ByID(ctx, sess.UserID)
	if err != nil {
		s.logger.WarnContext(ctx, "load user for streak", "user", sess.UserID, "error", err)
		return
	}
	days, today := streak.Update(user.Streak, user.LastTestDate, s.now())
	if err := s.users.UpdateStreak(ctx, user.ID, days, today); err != nil {
		s.logger.WarnContext(ctx, "update streak", "user", user.ID, "error", err)
	}
}

func (s *Server) retake(c *gin.Context) {
	sess := session.Get(c)

	var (
		next questiongen.SessionState
		kind questiongen.Kind
		ok   bool
	)
	switch requested := questiongen.Kind(c.PostForm("test")); requested {
	case questiongen.KindGrammar, questiongen.KindReading:
		next, ok = sess.Tests.RetakeKind(requested)
		kind = requested
	default:
		next, kind, ok = sess.Tests.Retake()
	}
	if !ok {
		s.redirect(c, "/", session.FlashWarning, "No test session found")
		return
	}

	sess.Tests = next
	s.redirect(c, "/"+string(kind)+"_test", "", "")
}
