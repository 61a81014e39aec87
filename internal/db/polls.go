package db

import (
	"context"
	"errors"

	"newsdesk/internal/models"
)

// ErrOptionNotFound возвращается при голосовании за несуществующий вариант.
var ErrOptionNotFound = errors.New("poll option not found")

// CreatePoll сохраняет опрос вместе с вариантами ответа в одной транзакции.
func (db *Database) CreatePoll(ctx context.Context, in models.PollInput) (models.Poll, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return models.Poll{}, err
	}
	defer tx.Rollback(ctx)

	var p models.Poll
	err = tx.QueryRow(ctx, `
        INSERT INTO polls (question, category, expires_at, is_active, show_results_before_voting, target_audience, attached_news_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, question, category, created_at, expires_at, is_active, show_results_before_voting, target_audience, attached_news_id
    `, in.Question, in.Category, in.ExpiresAt, in.IsActive, in.ShowResultsBeforeVoting, in.TargetAudience, in.AttachedNewsID).Scan(
		&p.ID, &p.Question, &p.Category, &p.CreatedAt, &p.ExpiresAt, &p.IsActive,
		&p.ShowResultsBeforeVoting, &p.TargetAudience, &p.AttachedNewsID,
	)
	if err != nil {
		return models.Poll{}, err
	}

	for _, text := range in.Options {
		var opt models.PollOption
		err = tx.QueryRow(ctx, `
            INSERT INTO poll_options (poll_id, text)
            VALUES ($1, $2)
            RETURNING id, poll_id, text, votes
        `, p.ID, text).Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Votes)
		if err != nil {
			return models.Poll{}, err
		}
		p.Options = append(p.Options, opt)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Poll{}, err
	}
	return p, nil
}

// GetPoll возвращает опрос с вариантами ответа и производным total_votes.
func (db *Database) GetPoll(ctx context.Context, id int) (models.Poll, error) {
	var p models.Poll
	err := db.Pool.QueryRow(ctx, `
        SELECT id, question, category, created_at, expires_at, is_active, show_results_before_voting, target_audience, attached_news_id
        FROM polls
        WHERE id = $1
    `, id).Scan(
		&p.ID, &p.Question, &p.Category, &p.CreatedAt, &p.ExpiresAt, &p.IsActive,
		&p.ShowResultsBeforeVoting, &p.TargetAudience, &p.AttachedNewsID,
	)
	if err != nil {
		return models.Poll{}, err
	}
	if err := db.loadOptions(ctx, &p); err != nil {
		return models.Poll{}, err
	}
	return p, nil
}

// ListActivePolls возвращает активные опросы с вариантами ответа.
func (db *Database) ListActivePolls(ctx context.Context) ([]models.Poll, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, question, category, created_at, expires_at, is_active, show_results_before_voting, target_audience, attached_news_id
        FROM polls
        WHERE is_active = TRUE AND (expires_at IS NULL OR expires_at > NOW())
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var polls []models.Poll
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(
			&p.ID, &p.Question, &p.Category, &p.CreatedAt, &p.ExpiresAt, &p.IsActive,
			&p.ShowResultsBeforeVoting, &p.TargetAudience, &p.AttachedNewsID,
		); err != nil {
			return nil, err
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range polls {
		if err := db.loadOptions(ctx, &polls[i]); err != nil {
			return nil, err
		}
	}
	return polls, nil
}

// Vote атомарно увеличивает счётчик голосов варианта ответа.
func (db *Database) Vote(ctx context.Context, pollID, optionID int) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE poll_options SET votes = votes + 1 WHERE id = $1 AND poll_id = $2
    `, optionID, pollID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOptionNotFound
	}
	return nil
}

// loadOptions загружает варианты ответа и считает total_votes как их сумму.
func (db *Database) loadOptions(ctx context.Context, p *models.Poll) error {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, poll_id, text, votes
        FROM poll_options
        WHERE poll_id = $1
        ORDER BY id
    `, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var opt models.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Votes); err != nil {
			return err
		}
		p.Options = append(p.Options, opt)
		p.TotalVotes += opt.Votes
	}
	return rows.Err()
}
