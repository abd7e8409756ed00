package repositories

import (
	"database/sql"

	intconfig "transfer-backend/internal/config"
	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"
)

type MessageRepository struct {
	DB *sql.DB
}

func (r MessageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const messageSelect = `
	SELECT id, name, email, COALESCE(phone, '') AS phone, subject, message, is_read, created_at
	FROM contact_messages
`

func scanMessage(row interface{ Scan(dest ...any) error }) (models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt)
	return m, err
}

func (r MessageRepository) List() ([]models.ContactMessage, error) {
	rows, err := r.db().Query(messageSelect + " ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.ContactMessage{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r MessageRepository) GetByID(id int64) (models.ContactMessage, error) {
	row := r.db().QueryRow(messageSelect+" WHERE id = ?", id)
	m, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return models.ContactMessage{}, domain.NotFoundError{Resource: "message"}
	}
	return m, err
}

func (r MessageRepository) Create(m models.ContactMessage) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO contact_messages (name, email, phone, subject, message, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, FALSE, NOW())
	`, m.Name, m.Email, nullIfEmpty(m.Phone), m.Subject, m.Message)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// MarkRead flips the read flag when an admin opens the message.
func (r MessageRepository) MarkRead(id int64) error {
	res, err := r.db().Exec(`UPDATE contact_messages SET is_read = TRUE WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM contact_messages WHERE id = ?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return domain.NotFoundError{Resource: "message"}
		}
	}
	return nil
}

func (r MessageRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "message"}
	}
	return nil
}
