package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandevgo/uniadvisor/internal/core"
	"github.com/sandevgo/uniadvisor/pkg/log"
)

// University is the full catalog row, including fields the prompting
// projection does not carry (description, website).
type University struct {
	ID             int64              `json:"id,omitempty"`
	Name           string             `json:"name"`
	Country        string             `json:"country"`
	City           string             `json:"city"`
	Description    string             `json:"description,omitempty"`
	Website        string             `json:"website,omitempty"`
	Ranking        int                `json:"ranking,omitempty"`
	Specialties    []string           `json:"specialties,omitempty"`
	Requirements   []core.Requirement `json:"requirements,omitempty"`
	TuitionFeeUSD  float64            `json:"tuition_fee_usd,omitempty"`
	AcceptanceRate float64            `json:"acceptance_rate,omitempty"`
	StudentCount   int                `json:"student_count,omitempty"`
}

// UniversitiesRepo is the sqlite-backed catalog gateway.
type UniversitiesRepo struct {
	db *sql.DB
}

func NewUniversitiesRepo(db *sql.DB) *UniversitiesRepo {
	return &UniversitiesRepo{db: db}
}

var sortColumns = map[string]string{
	"name":            "name",
	"ranking":         "ranking",
	"tuition_fee":     "tuition_fee_usd",
	"acceptance_rate": "acceptance_rate",
}

// Candidates returns matching universities plus the total match count
// before paging. Default order is name ascending.
func (r *UniversitiesRepo) Candidates(ctx context.Context, q core.CatalogQuery) ([]core.CandidateRecord, int, error) {
	where, args := buildFilter(q.Filters)

	var total int
	countQuery := `SELECT COUNT(*) FROM universities u` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count universities: %w", err)
	}

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "name"
	}
	order := " ORDER BY " + column
	if q.Desc {
		order += " DESC"
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, name, country, city, ranking, specialties, tuition_fee_usd, acceptance_rate, student_count FROM universities u` +
		where + order + " LIMIT ? OFFSET ?"
	args = append(args, limit, q.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query universities: %w", err)
	}
	defer rows.Close()

	records, ids, err := scanCandidates(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachRequirements(ctx, ids, records); err != nil {
		return nil, 0, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(records)).Int("total", total).Msg("loaded catalog candidates")
	return records, total, nil
}

// Search is a fuzzy lookup over name, description and city.
func (r *UniversitiesRepo) Search(ctx context.Context, query string) ([]core.CandidateRecord, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, country, city, ranking, specialties, tuition_fee_usd, acceptance_rate, student_count
		 FROM universities u
		 WHERE name LIKE ? OR description LIKE ? OR city LIKE ?
		 ORDER BY name`,
		pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search universities: %w", err)
	}
	defer rows.Close()

	records, ids, err := scanCandidates(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachRequirements(ctx, ids, records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID loads one full university row with its requirements.
// Returns sql.ErrNoRows when the id is unknown.
func (r *UniversitiesRepo) GetByID(ctx context.Context, id int64) (*University, error) {
	var u University
	var specialties string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, country, city, description, website, ranking, specialties, tuition_fee_usd, acceptance_rate, student_count
		 FROM universities WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Country, &u.City, &u.Description, &u.Website, &u.Ranking, &specialties,
			&u.TuitionFeeUSD, &u.AcceptanceRate, &u.StudentCount)
	if err != nil {
		return nil, err
	}
	if specialties != "" && specialties != "[]" {
		if err := json.Unmarshal([]byte(specialties), &u.Specialties); err != nil {
			return nil, fmt.Errorf("failed to unmarshal specialties: %w", err)
		}
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT specialty, minimum_score, exams FROM university_requirements WHERE university_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query requirements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var req core.Requirement
		var exams string
		if err := rows.Scan(&req.Specialty, &req.MinimumScore, &exams); err != nil {
			return nil, fmt.Errorf("failed to scan requirement: %w", err)
		}
		if exams != "" && exams != "[]" {
			if err := json.Unmarshal([]byte(exams), &req.Exams); err != nil {
				return nil, fmt.Errorf("failed to unmarshal exams: %w", err)
			}
		}
		u.Requirements = append(u.Requirements, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert adds one university with its requirements. Used by seeding.
func (r *UniversitiesRepo) Insert(ctx context.Context, u University) (int64, error) {
	specialties, err := json.Marshal(u.Specialties)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal specialties: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO universities (name, country, city, description, website, ranking, specialties, tuition_fee_usd, acceptance_rate, student_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Country, u.City, u.Description, u.Website, u.Ranking, string(specialties),
		u.TuitionFeeUSD, u.AcceptanceRate, u.StudentCount)
	if err != nil {
		return 0, fmt.Errorf("failed to insert university: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, req := range u.Requirements {
		exams, err := json.Marshal(req.Exams)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal exams: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO university_requirements (university_id, specialty, minimum_score, exams) VALUES (?, ?, ?, ?)`,
			id, req.Specialty, req.MinimumScore, string(exams))
		if err != nil {
			return 0, fmt.Errorf("failed to insert requirement: %w", err)
		}
	}

	return id, tx.Commit()
}

func buildFilter(f core.FilterCriteria) (string, []any) {
	var conds []string
	var args []any

	if f.Country != "" {
		conds = append(conds, `country LIKE '%' || ? || '%'`)
		args = append(args, f.Country)
	}
	if f.Specialty != "" {
		conds = append(conds, `specialties LIKE '%' || ? || '%'`)
		args = append(args, f.Specialty)
	}
	if f.Score != nil {
		conds = append(conds, `EXISTS (SELECT 1 FROM university_requirements r WHERE r.university_id = u.id AND r.minimum_score <= ?)`)
		args = append(args, *f.Score)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanCandidates(rows *sql.Rows) ([]core.CandidateRecord, []int64, error) {
	var records []core.CandidateRecord
	var ids []int64

	for rows.Next() {
		var rec core.CandidateRecord
		var id int64
		var specialties string

		if err := rows.Scan(&id, &rec.Name, &rec.Country, &rec.City, &rec.Ranking, &specialties,
			&rec.TuitionFeeUSD, &rec.AcceptanceRate, &rec.StudentCount); err != nil {
			return nil, nil, fmt.Errorf("failed to scan university: %w", err)
		}
		if specialties != "" && specialties != "[]" {
			if err := json.Unmarshal([]byte(specialties), &rec.Specialties); err != nil {
				return nil, nil, fmt.Errorf("failed to unmarshal specialties: %w", err)
			}
		}
		records = append(records, rec)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return records, ids, nil
}

func (r *UniversitiesRepo) attachRequirements(ctx context.Context, ids []int64, records []core.CandidateRecord) error {
	for i, id := range ids {
		rows, err := r.db.QueryContext(ctx,
			`SELECT specialty, minimum_score, exams FROM university_requirements WHERE university_id = ? ORDER BY id`, id)
		if err != nil {
			return fmt.Errorf("failed to query requirements: %w", err)
		}

		var reqs []core.Requirement
		for rows.Next() {
			var req core.Requirement
			var exams string
			if err := rows.Scan(&req.Specialty, &req.MinimumScore, &exams); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan requirement: %w", err)
			}
			if exams != "" && exams != "[]" {
				if err := json.Unmarshal([]byte(exams), &req.Exams); err != nil {
					rows.Close()
					return fmt.Errorf("failed to unmarshal exams: %w", err)
				}
			}
			reqs = append(reqs, req)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()

		records[i].Requirements = reqs
	}
	return nil
}
