package sandbox

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/mind-engage/mindengage-sandbox/internal/evaluation"
)

// SQLStore persists interactions and attempts in SQL (sqlite or postgres).
// Nested structures ride in JSON columns; see internal/db for the schema.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutInteraction(in evaluation.Interaction) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO interactions (id,concept_id,type,definition_json,created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE SET concept_id=EXCLUDED.concept_id, type=EXCLUDED.type, definition_json=EXCLUDED.definition_json`,
		in.ID, in.ConceptID, string(in.Type), string(body), time.Now().Unix())
	return err
}

func (s *SQLStore) GetInteraction(id string) (evaluation.Interaction, error) {
	row := s.db.QueryRow(`SELECT definition_json FROM interactions WHERE id=$1`, id)
	var body string
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return evaluation.Interaction{}, ErrInteractionNotFound
		}
		return evaluation.Interaction{}, err
	}
	var in evaluation.Interaction
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		return evaluation.Interaction{}, err
	}
	return in, nil
}

func (s *SQLStore) SaveAttempt(a Attempt) error {
	stateJSON, err := json.Marshal(a.UserState)
	if err != nil {
		return err
	}
	resultsJSON, err := json.Marshal(a.ElementResults)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO attempts
		(id,interaction_id,concept_id,user_id,user_state_json,score,passed,attempt_count,hints_used,time_to_complete_ms,rating,feedback,element_results_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		a.ID, a.InteractionID, a.ConceptID, a.UserID, string(stateJSON),
		a.Score, a.Passed, a.AttemptCount, a.HintsUsed, a.TimeToCompleteMs,
		int(a.Rating), a.Feedback, string(resultsJSON), a.CreatedAt)
	return err
}

func (s *SQLStore) GetAttempt(id string) (Attempt, error) {
	row := s.db.QueryRow(`SELECT id,interaction_id,concept_id,user_id,user_state_json,score,passed,attempt_count,hints_used,time_to_complete_ms,rating,feedback,element_results_json,created_at
		FROM attempts WHERE id=$1`, id)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, ErrAttemptNotFound
	}
	return a, err
}

func (s *SQLStore) ListAttempts(interactionID, userID string) ([]Attempt, error) {
	q := `SELECT id,interaction_id,concept_id,user_id,user_state_json,score,passed,attempt_count,hints_used,time_to_complete_ms,rating,feedback,element_results_json,created_at
		FROM attempts WHERE interaction_id=$1`
	args := []interface{}{interactionID}
	if userID != "" {
		q += ` AND user_id=$2`
		args = append(args, userID)
	}
	q += ` ORDER BY created_at DESC, id ASC`
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Attempt{}
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAttempt(r rowScanner) (Attempt, error) {
	var a Attempt
	var rating int
	var stateJSON, resultsJSON string
	if err := r.Scan(&a.ID, &a.InteractionID, &a.ConceptID, &a.UserID, &stateJSON,
		&a.Score, &a.Passed, &a.AttemptCount, &a.HintsUsed, &a.TimeToCompleteMs,
		&rating, &a.Feedback, &resultsJSON, &a.CreatedAt); err != nil {
		return Attempt{}, err
	}
	a.Rating = evaluation.FSRSRating(rating)
	if err := json.Unmarshal([]byte(stateJSON), &a.UserState); err != nil {
		return Attempt{}, err
	}
	if resultsJSON != "" {
		if err := json.Unmarshal([]byte(resultsJSON), &a.ElementResults); err != nil {
			return Attempt{}, err
		}
	}
	return a, nil
}
