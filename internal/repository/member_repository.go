package repository

import (
	"database/sql"
	"fmt"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
)

// MemberRepository provides data access methods for the member table.
type MemberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new MemberRepository with the provided database connection.
func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// GetMembers retrieves members from the database. When activeOnly is true,
// inactive members are filtered out. Returns an empty slice if no members match.
func (r *MemberRepository) GetMembers(activeOnly bool) ([]model.Member, error) {
	query := `
          SELECT id, member_number, name, email, phone, join_date, is_active
          FROM member
          WHERE 1=1
      `
	var args []any

	if activeOnly {
		query += " AND is_active = ?"
		args = append(args, 1)
	}

	query += " ORDER BY member_number"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query member table: %w", err)
	}
	defer rows.Close()

	members := []model.Member{}

	for rows.Next() {
		var m model.Member

		err := rows.Scan(
			&m.ID,
			&m.MemberNumber,
			&m.Name,
			&m.Email,
			&m.Phone,
			&m.JoinDate,
			&m.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member table results: %w", err)
		}

		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member table: %w", err)
	}

	return members, nil
}

// GetMemberOnID retrieves a single member by its ID.
func (r *MemberRepository) GetMemberOnID(memberID string) (model.Member, error) {
	query := `
          SELECT id, member_number, name, email, phone, join_date, is_active
          FROM member
          WHERE id = ?
      `
	var m model.Member

	err := r.db.QueryRow(query, memberID).Scan(
		&m.ID,
		&m.MemberNumber,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.JoinDate,
		&m.IsActive,
	)
	if err == sql.ErrNoRows {
		return model.Member{}, apperrors.ErrMemberNotFound
	}
	if err != nil {
		return model.Member{}, fmt.Errorf("failed to query member: %w", err)
	}

	return m, nil
}

// InsertMember inserts a new member row.
func (r *MemberRepository) InsertMember(m *model.Member) error {
	query := `
          INSERT INTO member (id, member_number, name, email, phone, join_date, is_active)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.Exec(query, m.ID, m.MemberNumber, m.Name, m.Email, m.Phone, formatDate(m.JoinDate), m.IsActive)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}
