package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizwoiz/ent"
	entquiz "github.com/abhisek/quizwoiz/ent/quiz"
	"github.com/abhisek/quizwoiz/ent/schema"
	"github.com/abhisek/quizwoiz/internal/quizgen"
)

// quizRepo implements QuizRepo backed by ent.
type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) Save(ctx context.Context, q quizgen.Quiz) error {
	records := make([]schema.QuestionRecord, len(q.Questions))
	for i, question := range q.Questions {
		records[i] = schema.QuestionRecord{
			ID:            question.ID,
			Text:          question.Text,
			Options:       question.Options,
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   question.Explanation,
		}
	}

	builder := r.client.Quiz.Create().
		SetQuizID(q.ID).
		SetTitle(q.Title).
		SetCategory(q.Category).
		SetQuestions(records)
	if !q.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(q.CreatedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save quiz: %w", err)
	}
	return nil
}

func (r *quizRepo) List(ctx context.Context, limit int) ([]quizgen.Quiz, error) {
	q := r.client.Quiz.Query().
		Order(ent.Desc(entquiz.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	quizzes := make([]quizgen.Quiz, len(rows))
	for i, row := range rows {
		quizzes[i] = toQuiz(row)
	}
	return quizzes, nil
}

func (r *quizRepo) Get(ctx context.Context, id string) (*quizgen.Quiz, error) {
	row, err := r.client.Quiz.Query().
		Where(entquiz.QuizID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	q := toQuiz(row)
	return &q, nil
}

func (r *quizRepo) Delete(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Quiz.Delete().
		Where(entquiz.QuizID(id)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("delete quiz: %w", err)
	}
	return n > 0, nil
}

func toQuiz(row *ent.Quiz) quizgen.Quiz {
	questions := make([]quizgen.Question, len(row.Questions))
	for i, rec := range row.Questions {
		questions[i] = quizgen.Question{
			ID:            rec.ID,
			Text:          rec.Text,
			Options:       rec.Options,
			CorrectAnswer: rec.CorrectAnswer,
			Explanation:   rec.Explanation,
		}
	}
	return quizgen.Quiz{
		ID:        row.QuizID,
		Title:     row.Title,
		Category:  row.Category,
		Questions: questions,
		CreatedAt: row.CreatedAt,
	}
}
