package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nextstep_backend/internals/constants"
	"nextstep_backend/internals/features/assessments/quiz/dto"
	"nextstep_backend/internals/features/assessments/quiz/model"
	userModel "nextstep_backend/internals/features/users/user/model"
)

// history results are never paginated by the caller, so cap defensively
const historyMaxRows = 100

// ErrPersistence wraps storage failures so the HTTP boundary can keep the
// client-facing message generic.
var ErrPersistence = errors.New("persistence failure")

type AssessmentService struct {
	DB *gorm.DB
}

func NewAssessmentService(db *gorm.DB) *AssessmentService {
	return &AssessmentService{DB: db}
}

/* =========================================================
   SUBMIT (find-or-create quiz → resolve user → atomic upsert)
========================================================= */

// Submit persists a completed quiz payload and returns the canonicalized
// result plus whether a new response row was created (false on retake).
func (s *AssessmentService) Submit(ctx context.Context, req *dto.SubmitAssessmentRequest) (*dto.AssessmentResult, bool, error) {
	db := s.DB.WithContext(ctx)

	quiz, err := s.ensureQuiz(db, req)
	if err != nil {
		return nil, false, fmt.Errorf("%w: ensure quiz: %v", ErrPersistence, err)
	}

	user, err := s.ensureUser(db, req.UserID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: ensure user: %v", ErrPersistence, err)
	}

	rawQuestions, err := req.RawQuestions()
	if err != nil {
		return nil, false, fmt.Errorf("%w: encode questions: %v", ErrPersistence, err)
	}

	now := time.Now().UTC()
	resp := model.QuizResponseModel{
		QuizResponseUserID:           user.ID,
		QuizResponseQuizID:           quiz.QuizID,
		QuizResponseScore:            *req.Score,
		QuizResponseSuggestedStreams: []string{},
		QuizResponseCompletedAt:      now,
	}
	if err := resp.SetAnswers(model.ResponseAnswers{
		UserAnswers:    req.UserAnswers,
		CorrectAnswers: req.CorrectAnswers(),
		Questions:      rawQuestions,
	}); err != nil {
		return nil, false, fmt.Errorf("%w: encode answers: %v", ErrPersistence, err)
	}

	// Retakes overwrite in place: a single conditional insert-or-update on the
	// (user_id, quiz_id) unique index. Never a read-then-write; two concurrent
	// retakes serialize in the store and the last commit wins.
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "quiz_response_user_id"},
			{Name: "quiz_response_quiz_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quiz_response_answers":      resp.QuizResponseAnswers,
			"quiz_response_score":        resp.QuizResponseScore,
			"quiz_response_completed_at": now,
			"quiz_response_updated_at":   now,
		}),
	}).Create(&resp).Error; err != nil {
		return nil, false, fmt.Errorf("%w: upsert response: %v", ErrPersistence, err)
	}

	// Re-read for the echo: on a retake the existing row keeps its id.
	var saved model.QuizResponseModel
	if err := db.
		Where("quiz_response_user_id = ? AND quiz_response_quiz_id = ?", user.ID, quiz.QuizID).
		First(&saved).Error; err != nil {
		return nil, false, fmt.Errorf("%w: reload response: %v", ErrPersistence, err)
	}
	created := saved.QuizResponseID == resp.QuizResponseID

	result := &dto.AssessmentResult{
		ID:             saved.QuizResponseID,
		Topic:          req.Topic,
		Questions:      req.Questions,
		UserAnswers:    req.UserAnswers,
		Score:          *req.Score,
		TotalQuestions: req.TotalQuestions,
		Percentage:     dto.Percentage(*req.Score, req.TotalQuestions),
		CompletedAt:    saved.QuizResponseCompletedAt,
		UserID:         resolveEchoUserID(req.UserID),
	}
	return result, created, nil
}

// ensureQuiz finds the quiz for (topic, APTITUDE) or materializes it together
// with its question rows in submission order. The lookup is not backed by a
// unique constraint: concurrent first submissions of a new topic can both
// create a row (accepted race, first-writer-wins on later lookups).
func (s *AssessmentService) ensureQuiz(db *gorm.DB, req *dto.SubmitAssessmentRequest) (*model.QuizModel, error) {
	var quiz model.QuizModel
	err := db.
		Where("quiz_title = ? AND quiz_category = ?", req.Topic, constants.QuizCategoryAptitude).
		First(&quiz).Error
	if err == nil {
		return &quiz, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	description := fmt.Sprintf("Aptitude quiz for %s", req.Topic)
	quiz = model.QuizModel{
		QuizTitle:          req.Topic,
		QuizDescription:    &description,
		QuizCategory:       constants.QuizCategoryAptitude,
		QuizTargetLevel:    constants.DefaultTargetLevel,
		QuizTotalQuestions: req.TotalQuestions,
		QuizIsActive:       true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		for i, q := range req.Questions {
			question := model.QuizQuestionModel{
				QuizQuestionQuizID: quiz.QuizID,
				QuizQuestionText:   q.Question,
				QuizQuestionType:   constants.QuestionTypeMultipleChoice,
				QuizQuestionOrder:  i + 1,
			}
			if err := question.SetOptions(q.Options); err != nil {
				return err
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// ensureUser resolves the submitting user, falling back to the demo identity
// and creating the row lazily with a synthesized email.
func (s *AssessmentService) ensureUser(db *gorm.DB, userID string) (*userModel.UserModel, error) {
	if userID == "" {
		userID = constants.DemoUserID
	}

	var user userModel.UserModel
	err := db.Where("id = ?", userID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = userModel.UserModel{
		ID:    userID,
		Email: fmt.Sprintf("%s@%s", userID, constants.DemoEmailDomain),
		Name:  constants.DemoUserName,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// the echo reports "anonymous" when no userId was submitted, matching the
// query-side default rather than the storage-side demo identity
func resolveEchoUserID(userID string) string {
	if userID == "" {
		return constants.AnonymousUserID
	}
	return userID
}

/* =========================================================
   HISTORY
========================================================= */

// History returns the user's responses, newest first, each joined with its
// quiz and ordered question list. topic is a case-sensitive substring filter
// on the quiz title.
func (s *AssessmentService) History(ctx context.Context, userID, topic string) ([]model.QuizResponseModel, error) {
	if userID == "" {
		userID = constants.AnonymousUserID
	}

	query := s.DB.WithContext(ctx).
		Model(&model.QuizResponseModel{}).
		Where("quiz_response_user_id = ?", userID)

	if topic != "" {
		query = query.
			Joins("JOIN quizzes ON quizzes.quiz_id = quiz_responses.quiz_response_quiz_id").
			Where("quizzes.quiz_title LIKE ?", "%"+topic+"%")
	}

	var rows []model.QuizResponseModel
	err := query.
		Preload("Quiz").
		Preload("Quiz.QuizQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_question_order ASC")
		}).
		Order("quiz_response_completed_at DESC").
		Limit(historyMaxRows).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetch history: %v", ErrPersistence, err)
	}
	return rows, nil
}
