package repositories

import (
	"database/sql"

	intconfig "railway-backend/internal/config"
	"railway-backend/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepo) GetByLogin(login string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT user_id, username, password_hash, role, email, phone
		FROM users WHERE username=? OR email=?`, login, login,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Email, &u.Phone)
	return u, err
}

func (r UserRepo) Exists(username, email string) (bool, error) {
	var count int
	err := r.db().QueryRow(
		`SELECT COUNT(*) FROM users WHERE username=? OR email=?`, username, email,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r UserRepo) Create(u models.User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (username, password_hash, role, email, phone)
		VALUES (?,?,?,?,?)`,
		u.Username, u.PasswordHash, u.Role, u.Email, u.Phone,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepo) List() ([]models.User, error) {
	rows, err := r.db().Query(
		`SELECT user_id, username, role, email, phone FROM users ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.Email, &u.Phone); err != nil {
			return out, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepo) Update(u models.User) error {
	var res sql.Result
	var err error
	if u.PasswordHash != "" {
		res, err = r.db().Exec(
			`UPDATE users SET username=?, password_hash=?, role=?, email=?, phone=? WHERE user_id=?`,
			u.Username, u.PasswordHash, u.Role, u.Email, u.Phone, u.ID,
		)
	} else {
		res, err = r.db().Exec(
			`UPDATE users SET username=?, role=?, email=?, phone=? WHERE user_id=?`,
			u.Username, u.Role, u.Email, u.Phone, u.ID,
		)
	}
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r UserRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE user_id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
